package romanize

import (
	"namesake/internal/script"
	"namesake/internal/textnorm"
)

// Romanizer converts text in a native script to Latin characters.
type Romanizer interface {
	Romanize(text string) string
}

// Chain applies each romanizer in turn, so later backends see the output of
// earlier ones.
type Chain []Romanizer

func (c Chain) Romanize(text string) string {
	for _, r := range c {
		text = r.Romanize(text)
	}
	return text
}

// Registry maps script categories to the romanizer backends able to handle them.
type Registry struct {
	backends map[script.Category][]Romanizer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[script.Category][]Romanizer)}
}

// Register appends backends for cat.
func (r *Registry) Register(cat script.Category, backends ...Romanizer) {
	r.backends[cat] = append(r.backends[cat], backends...)
}

// Backends returns the romanizers registered for cat.
func (r *Registry) Backends(cat script.Category) []Romanizer {
	if r == nil {
		return nil
	}
	return r.backends[cat]
}

// Candidates romanizes text with every backend registered for the members of
// cats. Results are normalized with whitespace removed, deduplicated, and
// returned in registration order. Outputs that still contain non-Latin letters
// are dropped because no Latin candidate could ever equal them.
func (r *Registry) Candidates(cats script.Categories, text string) []string {
	if r == nil || text == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, cat := range cats.Members() {
		for _, backend := range r.backends[cat] {
			candidate := textnorm.NoSpace(backend.Romanize(text))
			if candidate == "" || script.IsNonEnglish(candidate) {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			out = append(out, candidate)
		}
	}
	return out
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	kana := kanaRomanizer{}
	reading := readingRomanizer{kana: kana}
	r := NewRegistry()
	r.Register(script.Korean, hangulRomanizer{})
	r.Register(script.Japanese, kana, reading)
	r.Register(script.CJK, newPinyinRomanizer(), reading)
	return r
}

// Default returns the process-wide registry: Revised Romanization for Hangul,
// Hepburn with dictionary readings for kanji for Japanese, and both pinyin and
// the Japanese reading for Han-only text. It is built once at startup and must
// not be modified.
func Default() *Registry {
	return defaultRegistry
}
