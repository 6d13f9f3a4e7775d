// Package textsplit cuts extracted document text into overlapping chunks that
// respect paragraph, line and word boundaries where possible.
package textsplit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// DefaultSeparators are tried in order: paragraphs, lines, words, characters.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Chunk is a piece of the input text. StartIndex is the byte offset of Text
// within the input, or -1 if it could not be located.
type Chunk struct {
	Text       string
	StartIndex int
}

// Recursive splits text with the first separator that occurs in it and recurses
// into pieces that are still too long using the remaining separators. Sizes are
// counted in runes.
type Recursive struct {
	size       int
	overlap    int
	separators []string
}

func NewRecursive(size, overlap int) (*Recursive, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must be in [0, %d)", overlap, size)
	}
	return &Recursive{size: size, overlap: overlap, separators: DefaultSeparators}, nil
}

// Split returns the chunks of text together with their start offsets.
func (s *Recursive) Split(text string) []Chunk {
	pieces := s.SplitText(text)
	chunks := make([]Chunk, 0, len(pieces))

	index, prevLen, prevTail := 0, 0, 0
	for _, piece := range pieces {
		from := min(max(0, index+prevLen-prevTail), len(text))
		if pos := strings.Index(text[from:], piece); pos >= 0 {
			index = from + pos
		} else {
			index = -1
		}
		chunks = append(chunks, Chunk{Text: piece, StartIndex: index})
		prevLen = len(piece)
		prevTail = len(lastRunes(piece, s.overlap))
	}
	return chunks
}

// SplitText returns only the chunk texts.
func (s *Recursive) SplitText(text string) []string {
	return s.split(text, s.separators)
}

func (s *Recursive) split(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var next []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			next = separators[i+1:]
			break
		}
	}

	var final, good []string
	for _, piece := range splitKeepStart(text, separator) {
		if runeLen(piece) < s.size {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			final = append(final, s.merge(good)...)
			good = nil
		}
		if len(next) == 0 {
			final = append(final, piece)
		} else {
			final = append(final, s.split(piece, next)...)
		}
	}
	if len(good) > 0 {
		final = append(final, s.merge(good)...)
	}
	return final
}

// merge packs small pieces into chunks of at most size runes. After a chunk is
// emitted, pieces are dropped from the front until the carried tail fits in
// the overlap.
func (s *Recursive) merge(pieces []string) []string {
	var chunks, current []string
	total := 0
	for _, piece := range pieces {
		n := runeLen(piece)
		if total+n > s.size && len(current) > 0 {
			if chunk := join(current); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > s.overlap || (total+n > s.size && total > 0) {
				total -= runeLen(current[0])
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += n
	}
	if chunk := join(current); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// splitKeepStart splits text on sep, keeping sep at the start of every piece
// but the first. An empty sep splits into runes.
func splitKeepStart(text, sep string) []string {
	var pieces []string
	if sep == "" {
		for _, r := range text {
			pieces = append(pieces, string(r))
		}
		return pieces
	}
	for i, part := range strings.Split(text, sep) {
		if i > 0 {
			part = sep + part
		}
		if part != "" {
			pieces = append(pieces, part)
		}
	}
	return pieces
}

func join(pieces []string) string {
	return strings.TrimSpace(strings.Join(pieces, ""))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := len(s); i > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		count++
		if count == n {
			return s[i:]
		}
	}
	return s
}
