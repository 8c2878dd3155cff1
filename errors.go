package searchengine

import "github.com/cockroachdb/errors"

// Sentinel error kinds. Callers compare against these with errors.Is; the
// concrete error returned from a failing call is always marked with exactly
// one of them and carries additional context in its message.
var (
	// ErrInvalidStopWord is returned by New when a stop word contains a
	// control byte.
	ErrInvalidStopWord = errors.New("invalid stop word")

	// ErrInvalidDocumentID is returned by AddDocument for a negative or
	// already-present id, and by MatchDocument for a negative or unknown id.
	ErrInvalidDocumentID = errors.New("invalid document id")

	// ErrInvalidWord is returned by AddDocument when a document token
	// contains a control byte.
	ErrInvalidWord = errors.New("invalid word")

	// ErrEmptyQueryWord is returned by the query parser for a token that is
	// just "-" or empty after stripping the minus prefix.
	ErrEmptyQueryWord = errors.New("query word is empty")

	// ErrDoubleMinus is returned by the query parser for a token beginning
	// with "--".
	ErrDoubleMinus = errors.New("query has incorrect minus-words")

	// ErrInvalidQuerySymbol is returned by the query parser when a token
	// contains a control byte.
	ErrInvalidQuerySymbol = errors.New("query has incorrect symbols")
)

func markInvalidStopWord(word string) error {
	return errors.Mark(errors.Newf("invalid stop word: %q", word), ErrInvalidStopWord)
}

func markInvalidDocumentID(id int32) error {
	return errors.Mark(errors.Newf("invalid document id: %d", id), ErrInvalidDocumentID)
}

func markInvalidWord(word string) error {
	return errors.Mark(errors.Newf("word %q is invalid", word), ErrInvalidWord)
}

func markEmptyQueryWord() error {
	return errors.Mark(errors.Newf("query word is empty"), ErrEmptyQueryWord)
}

func markDoubleMinus(word string) error {
	return errors.Mark(errors.Newf("query has incorrect minus-words in %q", word), ErrDoubleMinus)
}

func markInvalidQuerySymbol(word string) error {
	return errors.Mark(errors.Newf("query has incorrect symbols in %q", word), ErrInvalidQuerySymbol)
}
