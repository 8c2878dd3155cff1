package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/kljensen/snowball/english"
	"github.com/rs/zerolog"

	searchengine "github.com/devancy/inverted-search-engine"
)

// replState holds everything the interactive loop needs across commands.
type replState struct {
	server      *searchengine.Server
	logger      zerolog.Logger
	pageSize    int
	stemPreview bool
}

// runREPL runs the main user interaction loop: readline-driven prompt,
// Ctrl+C clears the line once and exits on a second press, "exit" or EOF
// quits.
func runREPL(st *replState) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "search> ",
		HistoryFile:     ".searchcli_history.tmp",
		InterruptPrompt: "^C\n",
		EOFPrompt:       "exit\n",
		HistoryLimit:    200,
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Enter a query, or a command: match <id> <query>, remove <id>, batch <q1>;<q2>;..., stats, exit")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				fmt.Println("Exiting...")
				return nil
			}
			continue
		}
		if err == io.EOF || strings.TrimSpace(line) == "exit" {
			fmt.Println("Exiting...")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		dispatch(st, line)
	}
}

func dispatch(st *replState, line string) {
	switch {
	case line == "stats":
		fmt.Printf("documents indexed: %d\n", st.server.DocumentCount())
	case strings.HasPrefix(line, "match "):
		handleMatch(st, strings.TrimSpace(strings.TrimPrefix(line, "match ")))
	case strings.HasPrefix(line, "remove "):
		handleRemove(st, strings.TrimSpace(strings.TrimPrefix(line, "remove ")))
	case strings.HasPrefix(line, "batch "):
		handleBatch(st, strings.TrimSpace(strings.TrimPrefix(line, "batch ")))
	default:
		handleQuery(st, line)
	}
}

func handleQuery(st *replState, query string) {
	if st.stemPreview {
		printStemPreview(query)
	}

	done := LogDuration(st.logger, "find_top_documents")
	results, err := st.server.FindTopDocumentsActual(query, true)
	done()
	if err != nil {
		fmt.Printf("query error: %v\n", err)
		return
	}
	printResults(results, st.pageSize)
}

func handleMatch(st *replState, arg string) {
	parts := strings.SplitN(arg, " ", 2)
	if len(parts) != 2 {
		fmt.Println("usage: match <id> <query>")
		return
	}
	id, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		fmt.Printf("invalid document id: %v\n", err)
		return
	}
	words, status, err := st.server.MatchDocument(parts[1], int32(id), true)
	if err != nil {
		fmt.Printf("match error: %v\n", err)
		return
	}
	fmt.Printf("status=%s matched=%v\n", status, words)
}

func handleRemove(st *replState, arg string) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
	if err != nil {
		fmt.Printf("invalid document id: %v\n", err)
		return
	}
	st.server.Remove(int32(id), true)
	fmt.Printf("removed document %d (if present)\n", id)
}

// handleBatch demonstrates the parallel query driver, tagging the batch
// with a correlation id the way a tracing system would for a fanned-out
// call.
func handleBatch(st *replState, arg string) {
	queries := strings.Split(arg, ";")
	for i, q := range queries {
		queries[i] = strings.TrimSpace(q)
	}

	batchID := uuid.New()
	log := st.logger.With().Str("batch_id", batchID.String()).Logger()
	done := LogDuration(log, "process_queries")
	results, err := searchengine.ProcessQueries(st.server, queries)
	done()
	if err != nil {
		log.Error().Err(err).Msg("batch failed")
		return
	}

	for i, docs := range results {
		fmt.Printf("-- results for %q --\n", queries[i])
		printResults(docs, st.pageSize)
	}
}

func printResults(results []searchengine.Document, pageSize int) {
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return
	}
	paginator, err := searchengine.NewPaginator(results, pageSize)
	if err != nil {
		fmt.Printf("pagination error: %v\n", err)
		return
	}
	for _, page := range paginator.Pages() {
		for _, doc := range page.Items() {
			fmt.Println(doc.String())
		}
	}
}

func printStemPreview(query string) {
	fmt.Print("stem preview:")
	for _, word := range strings.Fields(query) {
		fmt.Printf(" %s->%s", word, english.Stem(word, false))
	}
	fmt.Println()
}
