package searchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noStopWords(string) bool { return false }

func TestParseQueryWordRejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"double minus", "--bad", ErrDoubleMinus},
		{"bare minus", "-", ErrEmptyQueryWord},
		{"control byte", "go\x01od", ErrInvalidQuerySymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQueryWord(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseQueryRejectsTrailingMinus(t *testing.T) {
	_, err := parseQuery("good -", noStopWords)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyQueryWord)
}

func TestParseQueryControlByteAnywhereInQuery(t *testing.T) {
	_, err := parseQuery("cat\x02dog fish", noStopWords)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuerySymbol)
}

func TestParseQueryDropsStopWords(t *testing.T) {
	stop := map[string]struct{}{"the": {}, "a": {}}
	isStop := func(w string) bool { _, ok := stop[w]; return ok }

	qv, err := parseQuery("the cat -a -dog fish", isStop)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "fish"}, qv.plusWords)
	assert.Equal(t, []string{"dog"}, qv.minusWords)
}

func TestParseQueryPreservesDuplicateOrder(t *testing.T) {
	qv, err := parseQuery("cat dog cat", noStopWords)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "cat"}, qv.plusWords)
}
