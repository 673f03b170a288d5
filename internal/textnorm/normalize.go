package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// soundtrackToken is dropped from names so "Goblin OST" and "Goblin" compare equal.
const soundtrackToken = "ost"

type options struct {
	keepSpecial bool
	noSpace     bool
}

// Option adjusts Normalize behaviour.
type Option func(*options)

// WithKeepSpecial preserves punctuation and symbols instead of replacing them
// with spaces. Some titles are only distinguishable by their special characters.
func WithKeepSpecial() Option {
	return func(o *options) { o.keepSpecial = true }
}

// WithoutSpaces removes whitespace entirely instead of collapsing it.
func WithoutSpaces() Option {
	return func(o *options) { o.noSpace = true }
}

// specialToSpace maps every rune that is not a letter, digit or mark to a space.
var specialToSpace = runes.Map(func(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) {
		return r
	}
	return ' '
})

// Normalize returns the comparison form of text. Empty input is returned as is.
func Normalize(text string, opts ...Option) string {
	if text == "" {
		return text
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	sep := " "
	if o.noSpace {
		sep = ""
	}

	folded := StripMarks(strings.ToLower(text))
	cleaned := folded
	if !o.keepSpecial {
		cleaned = specialToSpace.String(folded)
	}

	fields := strings.Fields(cleaned)
	kept := fields[:0]
	for _, field := range fields {
		if field == soundtrackToken {
			continue
		}
		kept = append(kept, field)
	}
	if len(kept) == 0 {
		// Punctuation-only (or OST-only) input keeps its characters.
		return strings.Join(strings.Fields(folded), sep)
	}
	return strings.Join(kept, sep)
}

// NoSpace is shorthand for Normalize(text, WithoutSpaces()).
func NoSpace(text string) string {
	return Normalize(text, WithoutSpaces())
}

// diacritic reports combining marks that StripMarks removes. Kana voicing marks
// are kept so that が does not collapse into か.
func diacritic(r rune) bool {
	return unicode.Is(unicode.Mn, r) && r != '\u3099' && r != '\u309a'
}

// StripMarks removes nonspacing combining marks (accents, umlauts) using an
// NFD -> drop Mn -> NFC round trip. Precomposed Hangul syllables and voiced
// kana survive the round trip unchanged.
func StripMarks(text string) string {
	if text == "" {
		return text
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(diacritic)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// Collapse trims text and replaces whitespace runs with a single space.
func Collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
