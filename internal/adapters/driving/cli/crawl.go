package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arah-infotech/sitebot/internal/adapters/driven/knowledge/crawl"
	"github.com/arah-infotech/sitebot/internal/core/domain"
)

var (
	crawlURLs   []string
	crawlOutput string
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl website pages and print the knowledge corpus",
	Long: `Runs the headless-browser crawl once and prints the extracted text.
Useful for checking what the assistant will be grounded in, or for
producing a static knowledge file with --output.`,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().StringArrayVar(&crawlURLs, "url", nil, "page to crawl (repeatable; default built-in site map)")
	crawlCmd.Flags().StringVarP(&crawlOutput, "output", "o", "", "write corpus to file instead of stdout")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	heading := color.New(color.FgCyan, color.Bold)
	success := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	urls := crawlURLs
	if len(urls) == 0 {
		urls = domain.DefaultCrawlURLs()
	}

	heading.Fprintf(cmd.OutOrStdout(), "Crawling %d pages...\n", len(urls))

	source := crawl.New(crawl.LaunchChrome, crawl.Config{URLs: urls})
	corpus, err := source.Fetch(context.Background())
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	if corpus == "" {
		warn.Fprintln(cmd.OutOrStdout(), "Crawl produced no content. Is Chrome installed?")
		return nil
	}

	success.Fprintf(cmd.OutOrStdout(), "Corpus: %d characters\n", len(corpus))

	if crawlOutput != "" {
		if err := os.WriteFile(crawlOutput, []byte(corpus), 0600); err != nil {
			return fmt.Errorf("writing corpus: %w", err)
		}
		success.Fprintf(cmd.OutOrStdout(), "Written to %s\n", crawlOutput)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), corpus)
	return nil
}
