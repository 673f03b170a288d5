package script

import (
	"strings"
	"unicode"
)

// Category identifies the script family of a string.
type Category uint8

const (
	// None is reported for text without any letters.
	None Category = iota
	English
	Korean
	Japanese
	CJK
	Other
	// Mixed is only returned by Of; it is never a member of a Categories set.
	Mixed
)

var categoryNames = map[Category]string{
	None:     "none",
	English:  "english",
	Korean:   "korean",
	Japanese: "japanese",
	CJK:      "cjk",
	Other:    "other",
	Mixed:    "mixed",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// NonEnglish lists the categories that count as a native, non-Latin script.
var NonEnglish = []Category{Korean, Japanese, CJK, Other}

// Categories is a set of script categories.
type Categories uint8

func (s Categories) with(c Category) Categories {
	return s | 1<<c
}

// Has reports whether c is a member of the set.
func (s Categories) Has(c Category) bool {
	return c != Mixed && s&(1<<c) != 0
}

// HasAny reports whether any of cats is a member of the set.
func (s Categories) HasAny(cats ...Category) bool {
	for _, c := range cats {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Len returns the number of categories in the set.
func (s Categories) Len() int {
	n := 0
	for c := English; c <= Other; c++ {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Members returns the categories in the set in declaration order.
func (s Categories) Members() []Category {
	members := make([]Category, 0, 2)
	for c := English; c <= Other; c++ {
		if s.Has(c) {
			members = append(members, c)
		}
	}
	return members
}

func (s Categories) String() string {
	members := s.Members()
	if len(members) == 0 {
		return None.String()
	}
	parts := make([]string, len(members))
	for i, c := range members {
		parts[i] = c.String()
	}
	return strings.Join(parts, "+")
}

// prolongedSoundMark (ー) belongs to the Common script but only appears in kana text.
const prolongedSoundMark = 'ー'

func classify(r rune) Category {
	switch {
	case !unicode.IsLetter(r) && r != prolongedSoundMark:
		return None
	case unicode.Is(unicode.Latin, r):
		return English
	case unicode.Is(unicode.Hangul, r):
		return Korean
	case unicode.In(r, unicode.Hiragana, unicode.Katakana) || r == prolongedSoundMark:
		return Japanese
	case unicode.Is(unicode.Han, r):
		return CJK
	default:
		return Other
	}
}

// Set returns every category present in text. Han ideographs written alongside
// kana are Japanese kanji, so they are folded into Japanese.
func Set(text string) Categories {
	var s Categories
	for _, r := range text {
		if c := classify(r); c != None {
			s = s.with(c)
		}
	}
	if s.Has(Japanese) && s.Has(CJK) {
		s &^= 1 << CJK
	}
	return s
}

// Of returns the category of text, Mixed when several are present.
func Of(text string) Category {
	s := Set(text)
	switch s.Len() {
	case 0:
		return None
	case 1:
		return s.Members()[0]
	default:
		return Mixed
	}
}

// ContainsAny reports whether text contains letters from any of cats.
func ContainsAny(text string, cats ...Category) bool {
	return Set(text).HasAny(cats...)
}

// IsNonEnglish reports whether text contains any non-Latin letters.
func IsNonEnglish(text string) bool {
	return ContainsAny(text, NonEnglish...)
}
