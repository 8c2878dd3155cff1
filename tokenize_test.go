package searchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIntoWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single space separated", "cat dog fish", []string{"cat", "dog", "fish"}},
		{"leading and trailing spaces", "  cat dog  ", []string{"cat", "dog"}},
		{"consecutive spaces collapse", "cat   dog", []string{"cat", "dog"}},
		{"empty string", "", []string{}},
		{"only spaces", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitIntoWords(tt.input))
		})
	}
}

func TestIsValidWord(t *testing.T) {
	assert.True(t, isValidWord("cat"))
	assert.True(t, isValidWord("curly-hair"))
	assert.False(t, isValidWord("ca\tt"))
	assert.False(t, isValidWord("cat\n"))
	assert.False(t, isValidWord(string([]byte{0x01})))
}
