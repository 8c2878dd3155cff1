package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	searchengine "github.com/devancy/inverted-search-engine"
)

// corpusRecord is one line of the tab-separated corpus file:
// id<TAB>status<TAB>comma,separated,ratings<TAB>text
type corpusRecord struct {
	id      int32
	status  searchengine.Status
	ratings []int32
	text    string
}

func parseStatus(s string) (searchengine.Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTUAL":
		return searchengine.StatusActual, nil
	case "IRRELEVANT":
		return searchengine.StatusIrrelevant, nil
	case "BANNED":
		return searchengine.StatusBanned, nil
	case "REMOVED":
		return searchengine.StatusRemoved, nil
	default:
		return 0, errors.Newf("unknown status %q", s)
	}
}

func parseRatings(s string) ([]int32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ratings := make([]int32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid rating %q", p)
		}
		ratings = append(ratings, int32(v))
	}
	return ratings, nil
}

func parseCorpusLine(line string, lineNo int) (corpusRecord, error) {
	fields := strings.SplitN(line, "\t", 4)
	if len(fields) != 4 {
		return corpusRecord{}, errors.Newf("line %d: expected 4 tab-separated fields, got %d", lineNo, len(fields))
	}

	id, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return corpusRecord{}, errors.Wrapf(err, "line %d: invalid document id", lineNo)
	}
	status, err := parseStatus(fields[1])
	if err != nil {
		return corpusRecord{}, errors.Wrapf(err, "line %d", lineNo)
	}
	ratings, err := parseRatings(fields[2])
	if err != nil {
		return corpusRecord{}, errors.Wrapf(err, "line %d", lineNo)
	}

	return corpusRecord{id: int32(id), status: status, ratings: ratings, text: fields[3]}, nil
}

// loadCorpus reads a tab-separated corpus file and adds every record to
// server in file order. Loading stops at the first malformed line or
// AddDocument failure.
func loadCorpus(server *searchengine.Server, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening corpus file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	count := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := parseCorpusLine(line, lineNo)
		if err != nil {
			return count, err
		}
		if err := server.AddDocument(record.id, record.text, record.status, record.ratings); err != nil {
			return count, errors.Wrapf(err, "line %d", lineNo)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "reading corpus file")
	}
	return count, nil
}
