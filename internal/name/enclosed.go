package name

import (
	"errors"
	"fmt"
	"strings"

	"namesake/internal/script"
)

// ErrNoEnclosedSplit is returned when text has no trailing enclosed part.
var ErrNoEnclosedSplit = errors.New("no enclosed name part")

var bracketPairs = map[rune]rune{
	')': '(',
	']': '[',
	'）': '（',
	'】': '【',
	'」': '「',
	'』': '『',
	'〉': '〈',
	'》': '《',
}

// SplitEnclosed splits "Primary (Secondary)" at the right-most top-level
// bracket pair that closes the string. Nested brackets of the same kind are
// kept inside the secondary part. Text without such a split is returned as a
// single trimmed element.
func SplitEnclosed(text string) []string {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) < 2 {
		return []string{trimmed}
	}
	closing := runes[len(runes)-1]
	opening, ok := bracketPairs[closing]
	if !ok {
		return []string{trimmed}
	}

	depth := 0
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case closing:
			depth++
		case opening:
			depth--
		}
		if depth != 0 {
			continue
		}
		primary := strings.TrimSpace(string(runes[:i]))
		secondary := strings.TrimSpace(string(runes[i+1 : len(runes)-1]))
		if primary == "" || secondary == "" {
			return []string{trimmed}
		}
		return []string{primary, secondary}
	}
	return []string{trimmed}
}

// FromEnclosed builds a Name from "Primary (Secondary)" text.
//
// A non-Latin secondary part becomes NonEng with the primary as English. A
// non-Latin primary with a Latin secondary is swapped so the Latin part is
// English. When both parts share a script class the primary keeps its slot and
// the secondary becomes a version.
func FromEnclosed(text string, opts ...Option) (*Name, error) {
	parts := SplitEnclosed(text)
	if len(parts) != 2 {
		return nil, fmt.Errorf("parse %q: %w", text, ErrNoEnclosedSplit)
	}
	primary, secondary := parts[0], parts[1]
	primaryNative, secondaryNative := script.IsNonEnglish(primary), script.IsNonEnglish(secondary)

	var n *Name
	switch {
	case !primaryNative && secondaryNative:
		n = &Name{English: primary, NonEng: secondary}
	case primaryNative && !secondaryNative:
		n = &Name{English: secondary, NonEng: primary}
	case primaryNative:
		n = &Name{NonEng: primary, Versions: []*Name{{NonEng: secondary}}}
	default:
		n = &Name{English: primary, Versions: []*Name{{English: secondary}}}
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Parse is FromEnclosed with a fallback for text without an enclosed part:
// the whole text becomes NonEng if it contains non-Latin letters and English
// otherwise.
func Parse(text string, opts ...Option) *Name {
	if n, err := FromEnclosed(text, opts...); err == nil {
		return n
	}
	trimmed := strings.TrimSpace(text)
	n := &Name{}
	if script.IsNonEnglish(trimmed) {
		n.NonEng = trimmed
	} else {
		n.English = trimmed
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
