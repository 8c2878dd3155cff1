package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	searchengine "github.com/devancy/inverted-search-engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		corpusPath  string
		stopWords   string
		pageSize    int
		stemPreview bool
	)

	root := &cobra.Command{
		Use:   "searchcli",
		Short: "Interactive driver for the inverted-index search engine",
	}

	repl := &cobra.Command{
		Use:   "repl",
		Short: "Load a corpus file and open an interactive search prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			server, err := searchengine.NewFromString(stopWords)
			if err != nil {
				return fmt.Errorf("building server: %w", err)
			}

			if corpusPath != "" {
				done := LogDuration(logger, "load_corpus")
				n, err := loadCorpus(server, corpusPath)
				done()
				if err != nil {
					return fmt.Errorf("loading corpus: %w", err)
				}
				logger.Info().Int("documents", n).Msg("corpus loaded")
			}

			return runREPL(&replState{
				server:      server,
				logger:      logger,
				pageSize:    pageSize,
				stemPreview: stemPreview,
			})
		},
	}
	repl.Flags().StringVarP(&corpusPath, "corpus", "c", "", "path to a tab-separated corpus file")
	repl.Flags().StringVarP(&stopWords, "stop-words", "s", "", "space-separated stop words")
	repl.Flags().IntVarP(&pageSize, "page-size", "n", searchengine.MaxResultDocumentCount, "results per page")
	repl.Flags().BoolVar(&stemPreview, "stem-preview", false, "print a debug stem preview of each query (display only, never affects the index)")

	query := &cobra.Command{
		Use:   "query <corpus> <query terms...>",
		Short: "Load a corpus and run a single query, non-interactively",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			server, err := searchengine.NewFromString(stopWords)
			if err != nil {
				return fmt.Errorf("building server: %w", err)
			}

			done := LogDuration(logger, "load_corpus")
			n, err := loadCorpus(server, args[0])
			done()
			if err != nil {
				return fmt.Errorf("loading corpus: %w", err)
			}
			logger.Info().Int("documents", n).Msg("corpus loaded")

			raw := strings.Join(args[1:], " ")
			if stemPreview {
				printStemPreview(raw)
			}

			results, err := server.FindTopDocumentsActual(raw, true)
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}
			printResults(results, pageSize)
			return nil
		},
	}
	query.Flags().StringVarP(&stopWords, "stop-words", "s", "", "space-separated stop words")
	query.Flags().IntVarP(&pageSize, "page-size", "n", searchengine.MaxResultDocumentCount, "results per page")
	query.Flags().BoolVar(&stemPreview, "stem-preview", false, "print a debug stem preview of the query (display only, never affects the index)")

	root.AddCommand(repl, query)
	return root
}
