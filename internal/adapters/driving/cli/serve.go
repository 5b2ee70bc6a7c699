package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arah-infotech/sitebot/internal/adapters/driven/ai"
	"github.com/arah-infotech/sitebot/internal/adapters/driven/config/file"
	"github.com/arah-infotech/sitebot/internal/adapters/driven/knowledge/crawl"
	"github.com/arah-infotech/sitebot/internal/adapters/driven/knowledge/static"
	"github.com/arah-infotech/sitebot/internal/adapters/driven/storage/sqlite"
	"github.com/arah-infotech/sitebot/internal/adapters/driving/httpapi"
	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/core/services"
	"github.com/arah-infotech/sitebot/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the site API server",
	Long: `Starts the HTTP API. Website knowledge is populated in the background
so the server accepts traffic immediately; the chatbot answers with a
loading fallback until the corpus is ready.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, then :5000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, settings, err := openSettings()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	chatCfg := settings.Chatbot()
	srvCfg := settings.Server()
	if serveAddr != "" {
		srvCfg.Addr = serveAddr
	}

	store, err := sqlite.NewStore(settings.DataDir())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()
	logger.Info("Database ready at %s", store.Path())

	knowledge := services.NewKnowledgeState(knowledgeSource(chatCfg))
	go func() {
		if err := knowledge.Populate(ctx); err != nil {
			logger.Warn("Knowledge population failed: %v", err)
		}
	}()

	llm := ai.CreateAndValidateCompletionService(chatCfg)
	if llm != nil {
		defer llm.Close()
	}

	responder := services.NewResponder(llm, knowledge, services.ResponderOptions{
		CorpusBudget: chatCfg.CorpusBudget,
	})
	if prompts, err := file.NewPromptStore(""); err == nil {
		responder.SetPromptStore(prompts)
		defer prompts.Close()
	} else {
		logger.Warn("Prompt store unavailable, using built-in prompt: %v", err)
	}

	content := services.NewContentService(
		store.CareerStore(),
		store.ProductStore(),
		store.ContactStore(),
		store.ApplicationStore(),
	)

	if srvCfg.JWTSecret == "" {
		logger.Warn("No JWT secret configured; admin login is disabled")
	}
	auth := services.NewAuthService(store.AdminStore(), srvCfg.JWTSecret)

	server := httpapi.NewServer(httpapi.Config{Addr: srvCfg.Addr}, responder, content, auth)
	return server.Run(ctx)
}

// knowledgeSource builds the corpus source selected by settings.
func knowledgeSource(cfg domain.ChatbotSettings) driven.KnowledgeSource {
	if cfg.Knowledge == domain.KnowledgeCrawl {
		return crawl.New(crawl.LaunchChrome, crawl.Config{URLs: cfg.CrawlURLs})
	}
	return static.New(cfg.KnowledgeFile)
}
