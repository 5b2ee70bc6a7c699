package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

func typeMessage(m *Model, text string) {
	m.input.SetValue(text)
}

func pressEnter(t *testing.T, m *Model) tea.Cmd {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.IsType(t, &Model{}, updated)
	return cmd
}

func TestNewModel_OpensWithWelcomeMessage(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "", nil })

	transcript := m.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.SenderBot, transcript[0].Sender)
	assert.Equal(t, domain.WelcomeMessage, transcript[0].Text)
	assert.False(t, m.Sending())
}

func TestEnter_AppendsUserMessageAndLocksInput(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "reply", nil })
	typeMessage(m, "  what services do you offer?  ")

	cmd := pressEnter(t, m)

	require.NotNil(t, cmd)
	transcript := m.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, domain.SenderUser, transcript[1].Sender)
	assert.Equal(t, "what services do you offer?", transcript[1].Text)
	assert.True(t, m.Sending())
	assert.Empty(t, m.input.Value())
}

func TestEnter_IgnoredWhileSending(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "reply", nil })
	typeMessage(m, "first")
	pressEnter(t, m)
	require.True(t, m.Sending())

	typeMessage(m, "second")
	cmd := pressEnter(t, m)

	assert.Nil(t, cmd)
	assert.Len(t, m.Transcript(), 2)
}

func TestEnter_IgnoresEmptyInput(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "reply", nil })
	typeMessage(m, "   ")

	cmd := pressEnter(t, m)

	assert.Nil(t, cmd)
	assert.Len(t, m.Transcript(), 1)
	assert.False(t, m.Sending())
}

func TestReplyReceived_AppendsExactlyOneBotEntry(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "reply", nil })
	typeMessage(m, "hello")
	pressEnter(t, m)

	updated, _ := m.Update(replyReceived{reply: "We offer cloud services."})
	m = updated.(*Model)

	transcript := m.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, domain.SenderBot, transcript[2].Sender)
	assert.Equal(t, "We offer cloud services.", transcript[2].Text)
	assert.False(t, m.Sending())
}

func TestSendMessage_SuccessDeliversReply(t *testing.T) {
	var gotMessage string
	m := NewModel(func(_ context.Context, message string) (string, error) {
		gotMessage = message
		return "grounded answer", nil
	})

	msg := m.sendMessage("hello")()

	reply, ok := msg.(replyReceived)
	require.True(t, ok)
	assert.Equal(t, "grounded answer", reply.reply)
	assert.Equal(t, "hello", gotMessage)
}

func TestSendMessage_TimeoutShowsSlowBackendText(t *testing.T) {
	m := NewModel(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}).WithTimeout(10 * time.Millisecond)

	msg := m.sendMessage("hello")()

	reply, ok := msg.(replyReceived)
	require.True(t, ok)
	assert.Equal(t, replyTimedOut, reply.reply)
}

func TestSendMessage_DegradedErrorsMapToFallbacks(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", domain.ErrChatNotConfigured, domain.ReplyNotConfigured},
		{"knowledge loading", domain.ErrKnowledgeNotReady, domain.ReplyNotReady},
		{"provider outage", fmt.Errorf("%w: status 502", domain.ErrProviderFailure), domain.ReplyProviderDown},
		{"unknown error", fmt.Errorf("connection refused"), domain.ReplyProviderDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(func(context.Context, string) (string, error) { return "", tt.err })

			msg := m.sendMessage("hello")()

			reply, ok := msg.(replyReceived)
			require.True(t, ok)
			assert.Equal(t, tt.want, reply.reply)
		})
	}
}

func TestKeysIgnoredWhileSending(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "reply", nil })
	typeMessage(m, "hello")
	pressEnter(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = updated.(*Model)

	assert.Empty(t, m.input.Value())
}

func TestEscQuits(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "", nil })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_ShowsSpinnerWhileSending(t *testing.T) {
	m := NewModel(func(context.Context, string) (string, error) { return "reply", nil })
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(*Model)

	typeMessage(m, "hello")
	pressEnter(t, m)

	assert.Contains(t, m.View(), "thinking...")
}
