// Package tui provides the terminal chat widget. It drives the chatbot
// endpoint the same way the website widget does: one user message in,
// exactly one assistant entry out, with fixed fallback text when the
// backend is slow or unreachable.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

// DefaultSendTimeout bounds a single chat round trip.
const DefaultSendTimeout = 60 * time.Second

// replyTimedOut is shown when the backend does not answer in time. It is
// distinct from the provider-outage fallback so users can tell a slow
// backend from a down one.
const replyTimedOut = "The assistant took too long to respond. Please try again."

// SendFunc delivers one user message and returns the assistant reply.
type SendFunc func(ctx context.Context, message string) (string, error)

// replyReceived carries the assistant reply (or a fallback) back to the
// model. Every send produces exactly one of these.
type replyReceived struct {
	reply string
}

// Model is the Bubbletea model for the chat widget.
type Model struct {
	styles   *Styles
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	send    SendFunc
	timeout time.Duration

	transcript []domain.ChatMessage
	sending    bool
	width      int
	height     int
	ready      bool
}

// NewModel creates a chat widget model. The transcript opens with the
// assistant welcome message.
func NewModel(send SendFunc) *Model {
	input := textinput.New()
	input.Placeholder = "Ask about our services, products or careers..."
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		styles:  DefaultStyles(),
		input:   input,
		spinner: sp,
		send:    send,
		timeout: DefaultSendTimeout,
		transcript: []domain.ChatMessage{
			{Sender: domain.SenderBot, Text: domain.WelcomeMessage},
		},
		width:  80,
		height: 24,
	}
}

// WithTimeout overrides the per-message round-trip budget.
func (m *Model) WithTimeout(d time.Duration) *Model {
	m.timeout = d
	return m
}

// Transcript returns the conversation so far.
func (m *Model) Transcript() []domain.ChatMessage {
	return m.transcript
}

// Sending reports whether a round trip is in flight.
func (m *Model) Sending() bool {
	return m.sending
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat widget.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case replyReceived:
		m.transcript = append(m.transcript, domain.ChatMessage{
			Sender: domain.SenderBot,
			Text:   msg.reply,
		})
		m.sending = false
		m.input.Focus()
		m.refreshViewport()
		return m, textinput.Blink

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		// Input is locked while a reply is in flight.
		if m.sending {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}

		m.transcript = append(m.transcript, domain.ChatMessage{
			Sender: domain.SenderUser,
			Text:   text,
		})
		m.input.SetValue("")
		m.input.Blur()
		m.sending = true
		m.refreshViewport()
		return m, tea.Batch(m.sendMessage(text), m.spinner.Tick)

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.sending {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sendMessage delivers one message to the backend. The command always
// resolves to a single replyReceived, substituting fallback text for
// timeouts and failures.
func (m *Model) sendMessage(text string) tea.Cmd {
	send := m.send
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reply, err := send(ctx, text)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return replyReceived{reply: replyTimedOut}
			}
			if fallback, ok := domain.DisplayReply(err); ok {
				return replyReceived{reply: fallback}
			}
			return replyReceived{reply: domain.ReplyProviderDown}
		}
		return replyReceived{reply: reply}
	}
}

// View renders the chat widget.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Arah Infotech Assistant"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.sending {
		b.WriteString(m.styles.Muted.Render(m.spinner.View() + " thinking..."))
	} else {
		b.WriteString(m.styles.InputBox.Width(max(20, m.width-4)).Render(m.input.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter: send • esc: quit"))

	return b.String()
}

// resize adjusts the layout to the terminal size.
func (m *Model) resize() {
	vpHeight := m.height - 7
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport = viewport.New(m.width, vpHeight)
	m.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the newest
// message.
func (m *Model) refreshViewport() {
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	var lines []string
	for _, msg := range m.transcript {
		label := m.styles.BotLabel.Render("Assistant")
		if msg.Sender == domain.SenderUser {
			label = m.styles.UserLabel.Render("You")
		}
		body := m.styles.Body.Width(width).Render(msg.Text)
		lines = append(lines, label+"\n"+body)
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, lines...))
	m.viewport.GotoBottom()
}
