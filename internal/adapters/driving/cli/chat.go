package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arah-infotech/sitebot/internal/adapters/driving/tui"
)

var chatServerURL string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long: `Opens a terminal chat widget against a running site API. The widget
mirrors the website one: messages lock while a reply is in flight, and
backend problems surface as fixed fallback replies.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatServerURL, "server", "http://localhost:5000", "site API base URL")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	model := tui.NewModel(tui.NewHTTPSend(chatServerURL, nil))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat widget failed: %w", err)
	}
	return nil
}
