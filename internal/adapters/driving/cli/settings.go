package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the assistant provider, knowledge source and
server options.

Use 'settings wizard' for interactive setup.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the assistant step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	store, settings, err := openSettings()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	chatCfg := settings.Chatbot()
	srvCfg := settings.Server()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Chatbot]")
	cmd.Printf("  Provider: %s\n", chatCfg.Provider.Description())
	if chatCfg.Model != "" {
		cmd.Printf("  Model: %s\n", chatCfg.Model)
	}
	if chatCfg.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(chatCfg.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Knowledge: %s\n", chatCfg.Knowledge.Description())
	if chatCfg.Knowledge == domain.KnowledgeCrawl {
		urls := chatCfg.CrawlURLs
		if len(urls) == 0 {
			urls = domain.DefaultCrawlURLs()
		}
		cmd.Printf("  Crawl pages: %d\n", len(urls))
	}
	if chatCfg.KnowledgeFile != "" {
		cmd.Printf("  Knowledge file: %s\n", chatCfg.KnowledgeFile)
	}
	status := "configured"
	if !chatCfg.IsConfigured() {
		status = "not configured (assistant will answer with its unavailable fallback)"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", srvCfg.Addr)
	if srvCfg.JWTSecret != "" {
		cmd.Printf("  JWT secret: (set)\n")
	} else {
		cmd.Printf("  JWT secret: (not set, admin login disabled)\n")
	}
	cmd.Println()
	cmd.Printf("Config file: %s\n", store.Path())

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	_, settings, err := openSettings()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	cmd.Println("Sitebot Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)
	cfg := settings.Chatbot()

	// Step 1: provider
	cmd.Println("Step 1: Completion Provider")
	cmd.Println("---------------------------")
	providers := []domain.CompletionProvider{domain.ProviderGroq, domain.ProviderGemini}
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	choice := parseChoice(readLine(reader), len(providers), 1)
	cfg.Provider = providers[choice-1]

	cmd.Print("Model (empty for provider default): ")
	cfg.Model = readLine(reader)

	cmd.Print("API key (hidden, empty to keep current): ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err == nil && len(key) > 0 {
		cfg.APIKey = string(key)
	} else {
		// Keep the stored key; SetChatbot skips empty keys.
		cfg.APIKey = ""
	}

	// Step 2: knowledge source
	cmd.Println()
	cmd.Println("Step 2: Knowledge Source")
	cmd.Println("------------------------")
	kinds := []domain.KnowledgeKind{domain.KnowledgeStatic, domain.KnowledgeCrawl}
	for i, k := range kinds {
		cmd.Printf("  %d. %s\n", i+1, k.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	choice = parseChoice(readLine(reader), len(kinds), 1)
	cfg.Knowledge = kinds[choice-1]

	if cfg.Knowledge == domain.KnowledgeStatic {
		cmd.Print("Knowledge file override (empty for built-in content): ")
		cfg.KnowledgeFile = readLine(reader)
	}

	if err := settings.SetChatbot(cfg); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
