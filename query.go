package searchengine

// queryVector is the parsed form of a raw query string: an ordered plus-word
// list (terms that must contribute to scoring) and an ordered minus-word
// list (terms whose presence excludes a document). Stop-words are dropped
// during parsing and never appear in either list.
type queryVector struct {
	plusWords  []string
	minusWords []string
}

// queryWord is one token of a parsed query, before stop-word filtering.
type queryWord struct {
	data    string
	isMinus bool
}

// parseQueryWord classifies a single raw query token:
//  1. a leading "-" marks the word as minus and is stripped
//  2. an empty remainder is an error
//  3. a remainder that still starts with "-" is a double minus, an error
//  4. a control byte anywhere in the remainder is an error
func parseQueryWord(text string) (queryWord, error) {
	if text == "" {
		return queryWord{}, markEmptyQueryWord()
	}

	isMinus := false
	if text[0] == '-' {
		isMinus = true
		text = text[1:]
	}

	if text == "" {
		return queryWord{}, markEmptyQueryWord()
	}
	if isMinus && text[0] == '-' {
		return queryWord{}, markDoubleMinus(text)
	}
	if !isValidWord(text) {
		return queryWord{}, markInvalidQuerySymbol(text)
	}

	return queryWord{data: text, isMinus: isMinus}, nil
}

// parseQuery tokenizes raw, classifies each token, drops stop-words, and
// returns the resulting plus/minus word lists in input order. Duplicates
// are preserved; callers that need distinct terms dedup downstream.
func parseQuery(raw string, isStopWord func(string) bool) (queryVector, error) {
	var result queryVector
	for _, token := range splitIntoWords(raw) {
		qw, err := parseQueryWord(token)
		if err != nil {
			return queryVector{}, err
		}
		if isStopWord(qw.data) {
			continue
		}
		if qw.isMinus {
			result.minusWords = append(result.minusWords, qw.data)
		} else {
			result.plusWords = append(result.plusWords, qw.data)
		}
	}
	return result, nil
}
