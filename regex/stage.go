// Package regex extracts schedule records from raw page text with cascaded
// regular expressions. Each stage scans the substring produced by the stage
// before it, so the scope of every pattern is explicit.
package regex

import (
	"regexp"
	"strings"
)

// Isolator narrows a page to the coarse sections that each hold one record
// group. Matches are returned in document order.
type Isolator struct {
	re    *regexp.Regexp
	limit int
}

// NewIsolator compiles pattern into an Isolator returning at most limit
// sections. A negative limit returns every section.
func NewIsolator(pattern string, limit int) *Isolator {
	return &Isolator{re: regexp.MustCompile(pattern), limit: limit}
}

// Isolate returns the full text of each matched section.
func (i *Isolator) Isolate(text string) []string {
	return i.re.FindAllString(text, i.limit)
}

// Field pulls a leaf value out of a section from capture group 1.
// Captured values are trimmed of surrounding whitespace and passed through
// Decode when set.
type Field struct {
	re     *regexp.Regexp
	Decode func(string) string
}

// NewField compiles pattern, which must have one capture group, into a Field.
func NewField(pattern string) *Field {
	return &Field{re: regexp.MustCompile(pattern)}
}

// First returns the value of the first match in text.
// ok is false if the pattern does not match.
func (f *Field) First(text string) (value string, ok bool) {
	m := f.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return f.clean(m[1]), true
}

// All returns the values of every match in text, in document order.
// The result is empty, never nil, when nothing matches.
func (f *Field) All(text string) []string {
	matches := f.re.FindAllStringSubmatch(text, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, f.clean(m[1]))
	}
	return values
}

func (f *Field) clean(s string) string {
	s = strings.TrimSpace(s)
	if f.Decode != nil {
		s = f.Decode(s)
	}
	return s
}

// Block is a labeled region of a section: capture group 1 is the label and
// capture group 2 is the body that later stages scan.
type Block struct {
	Label string
	Body  string
}

// BlockSplitter finds labeled blocks within a section.
type BlockSplitter struct {
	re *regexp.Regexp
}

// NewBlockSplitter compiles pattern, which must have two capture groups.
func NewBlockSplitter(pattern string) *BlockSplitter {
	return &BlockSplitter{re: regexp.MustCompile(pattern)}
}

// Split returns every block in text, in document order.
func (s *BlockSplitter) Split(text string) []Block {
	matches := s.re.FindAllStringSubmatch(text, -1)
	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, Block{Label: strings.TrimSpace(m[1]), Body: m[2]})
	}
	return blocks
}

// DecodeAmp replaces the &amp; entity with &. No other entity is decoded.
func DecodeAmp(s string) string {
	return strings.ReplaceAll(s, "&amp;", "&")
}
