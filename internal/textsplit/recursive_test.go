package textsplit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSplitter(t *testing.T, size, overlap int) *Recursive {
	t.Helper()
	s, err := NewRecursive(size, overlap)
	require.NoError(t, err)
	return s
}

func TestNewRecursive_InvalidSizes(t *testing.T) {
	_, err := NewRecursive(0, 0)
	assert.Error(t, err)

	_, err = NewRecursive(100, 100)
	assert.Error(t, err)

	_, err = NewRecursive(100, -1)
	assert.Error(t, err)
}

func TestRecursive_Split(t *testing.T) {
	testCases := []struct {
		name     string
		size     int
		overlap  int
		text     string
		expected []Chunk
	}{
		{
			name:     "ShortTextIsOneTrimmedChunk",
			size:     DefaultChunkSize,
			overlap:  DefaultChunkOverlap,
			text:     "  hello world \n",
			expected: []Chunk{{Text: "hello world", StartIndex: 2}},
		},
		{
			name:     "WhitespaceOnly",
			size:     DefaultChunkSize,
			overlap:  DefaultChunkOverlap,
			text:     " \n\n \n ",
			expected: []Chunk{},
		},
		{
			name:    "WordsWithOverlap",
			size:    5,
			overlap: 2,
			text:    "a b c d e f",
			expected: []Chunk{
				{Text: "a b c", StartIndex: 0},
				{Text: "c d", StartIndex: 4},
				{Text: "d e", StartIndex: 6},
				{Text: "e f", StartIndex: 8},
			},
		},
		{
			name:    "PiecesLargerThanOverlapAreNotCarried",
			size:    7,
			overlap: 3,
			text:    "abc def ghi jkl",
			expected: []Chunk{
				{Text: "abc def", StartIndex: 0},
				{Text: "ghi", StartIndex: 8},
				{Text: "jkl", StartIndex: 12},
			},
		},
		{
			name:    "ParagraphsPreferred",
			size:    12,
			overlap: 0,
			text:    "para one.\n\npara two.",
			expected: []Chunk{
				{Text: "para one.", StartIndex: 0},
				{Text: "para two.", StartIndex: 11},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSplitter(t, tc.size, tc.overlap)
			assert.Equal(t, tc.expected, s.Split(tc.text))
		})
	}
}

func TestRecursive_Split_CountsRunes(t *testing.T) {
	s := newSplitter(t, 10, 0)
	text := strings.Repeat("é", 25)

	chunks := s.Split(text)
	require.Len(t, chunks, 3)

	assert.Equal(t, 10, utf8.RuneCountInString(chunks[0].Text))
	assert.Equal(t, 10, utf8.RuneCountInString(chunks[1].Text))
	assert.Equal(t, 5, utf8.RuneCountInString(chunks[2].Text))
	assert.Equal(t, []int{0, 20, 40}, []int{chunks[0].StartIndex, chunks[1].StartIndex, chunks[2].StartIndex})
}

func TestRecursive_Split_DefaultSizes(t *testing.T) {
	s := newSplitter(t, DefaultChunkSize, DefaultChunkOverlap)

	var b strings.Builder
	for i := 0; i < 40; i++ {
		for j := 0; j < 30; j++ {
			b.WriteString("retrieval augmented generation ")
		}
		b.WriteString("\n\n")
	}
	text := b.String()

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)

	for i, c := range chunks {
		assert.NotEmpty(t, c.Text)
		assert.LessOrEqual(t, utf8.RuneCountInString(c.Text), DefaultChunkSize)
		require.GreaterOrEqual(t, c.StartIndex, 0)
		assert.True(t, strings.HasPrefix(text[c.StartIndex:], c.Text), "chunk %d must be located at its start index", i)
		if i > 0 {
			assert.GreaterOrEqual(t, c.StartIndex, chunks[i-1].StartIndex)
		}
	}
}

func TestSplitKeepStart(t *testing.T) {
	assert.Equal(t, []string{"a", "\nb", "\nc"}, splitKeepStart("a\nb\nc", "\n"))
	assert.Equal(t, []string{"\nb"}, splitKeepStart("\nb", "\n"))
	assert.Equal(t, []string{"x", "é"}, splitKeepStart("xé", ""))
}

func TestLastRunes(t *testing.T) {
	assert.Equal(t, "", lastRunes("abc", 0))
	assert.Equal(t, "bc", lastRunes("abc", 2))
	assert.Equal(t, "abc", lastRunes("abc", 10))
	assert.Equal(t, "éé", lastRunes("aéé", 2))
}
