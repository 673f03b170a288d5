package name

import (
	"cmp"
	"slices"
	"sync"

	"namesake/internal/script"
	"namesake/internal/textnorm"
)

// Name is a candidate identity written in one or more scripts. Absent
// components are empty strings.
type Name struct {
	English        string         `json:"english,omitempty"`
	NonEng         string         `json:"non_eng,omitempty"`
	Romanized      string         `json:"romanized,omitempty"`
	LitTranslation string         `json:"lit_translation,omitempty"`
	Versions       []*Name        `json:"versions,omitempty"`
	Extra          map[string]any `json:"extra,omitempty"`

	derivedOnce sync.Once
	derived     derived
	romanOnce   sync.Once
	roman       romanization
}

// Option sets an optional component in New.
type Option func(*Name)

// WithRomanized sets the Latin transliteration of the native-script form.
func WithRomanized(romanized string) Option {
	return func(n *Name) { n.Romanized = romanized }
}

// WithLitTranslation sets the English gloss of the native-script form.
func WithLitTranslation(translation string) Option {
	return func(n *Name) { n.LitTranslation = translation }
}

// WithVersions appends equivalent alternate names. Nil entries are skipped.
func WithVersions(versions ...*Name) Option {
	return func(n *Name) {
		for _, v := range versions {
			if v != nil {
				n.Versions = append(n.Versions, v)
			}
		}
	}
}

// WithExtra stores opaque metadata under key.
func WithExtra(key string, value any) Option {
	return func(n *Name) {
		if n.Extra == nil {
			n.Extra = make(map[string]any)
		}
		n.Extra[key] = value
	}
}

// New builds a Name from its English and native-script forms.
func New(english, nonEng string, opts ...Option) *Name {
	n := &Name{English: english, NonEng: nonEng}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// present reports whether s has a comparison form. Whitespace or combining
// marks alone do not count.
func present(s string) bool {
	return textnorm.NoSpace(s) != ""
}

// IsZero reports whether the name carries no identity. A zero Name matches
// nothing, including itself.
func (n *Name) IsZero() bool {
	if n == nil {
		return true
	}
	return !present(n.English) && !present(n.NonEng) && !present(n.Romanized) && !present(n.LitTranslation)
}

// EnglishOrTranslation returns the form used for Latin comparisons: English,
// then the literal translation, then the romanization when there is no
// native-script form to romanize from.
func (n *Name) EnglishOrTranslation() string {
	if n == nil {
		return ""
	}
	switch {
	case present(n.English):
		return n.English
	case present(n.LitTranslation):
		return n.LitTranslation
	case !present(n.NonEng) && present(n.Romanized):
		return n.Romanized
	}
	return ""
}

// String renders "English (NonEng)" when both forms exist, else the single
// present component.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	eng := n.EnglishOrTranslation()
	switch {
	case eng != "" && present(n.NonEng):
		return eng + " (" + n.NonEng + ")"
	case eng != "":
		return eng
	case present(n.NonEng):
		return n.NonEng
	case present(n.Romanized):
		return n.Romanized
	}
	return n.LitTranslation
}

// Parts returns the non-empty text components in declaration order.
func (n *Name) Parts() []string {
	if n == nil {
		return nil
	}
	var parts []string
	for _, p := range []string{n.English, n.NonEng, n.Romanized, n.LitTranslation} {
		if present(p) {
			parts = append(parts, p)
		}
	}
	return parts
}

// Key is the exact identity of a Name, usable as a map key for deduplication.
type Key struct {
	English string
	NonEng  string
}

// Key returns the (English, NonEng) identity.
func (n *Name) Key() Key {
	if n == nil {
		return Key{}
	}
	return Key{English: n.English, NonEng: n.NonEng}
}

// Equal reports exact (English, NonEng) identity. It is not a fuzzy match.
func (n *Name) Equal(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Key() == other.Key()
}

// Compare orders names by English then NonEng.
func Compare(a, b *Name) int {
	ka, kb := a.Key(), b.Key()
	if c := cmp.Compare(ka.English, kb.English); c != 0 {
		return c
	}
	return cmp.Compare(ka.NonEng, kb.NonEng)
}

// Less reports whether n sorts before other.
func (n *Name) Less(other *Name) bool {
	return Compare(n, other) < 0
}

// Sort orders names in place by (English, NonEng). Ties keep their order.
func Sort(names []*Name) {
	slices.SortStableFunc(names, Compare)
}

// Dedupe drops names whose (English, NonEng) identity was already seen.
func Dedupe(names []*Name) []*Name {
	seen := make(map[Key]struct{}, len(names))
	out := names[:0:0]
	for _, n := range names {
		if n == nil {
			continue
		}
		if _, ok := seen[n.Key()]; ok {
			continue
		}
		seen[n.Key()] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Scripts returns the script categories of the native-script form.
func (n *Name) Scripts() script.Categories {
	if n == nil {
		return 0
	}
	return n.derive().scripts
}
