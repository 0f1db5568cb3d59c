package pavolang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Line returns the 1-based line n without its terminator.
func (s *Source) Line(n int) (string, bool) {
	if n < 1 || n > len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[n-1], "\r"), true
}
