package name

import (
	"regexp"
	"slices"

	"namesake/internal/romanize"
	"namesake/internal/script"
	"namesake/internal/textnorm"
)

type derived struct {
	latin   string
	nonEng  string
	scripts script.Categories
}

type romanization struct {
	pattern    *regexp.Regexp
	candidates []string
}

func (n *Name) derive() *derived {
	n.derivedOnce.Do(func() {
		n.derived = derived{
			latin:   textnorm.NoSpace(n.EnglishOrTranslation()),
			nonEng:  textnorm.NoSpace(n.NonEng),
			scripts: script.Set(n.NonEng),
		}
	})
	return &n.derived
}

// romanizable lists the scripts with a romanization strategy. Other scripts
// never accept a romanization.
var romanizable = []script.Category{script.Korean, script.Japanese, script.CJK}

func (n *Name) romanizations() *romanization {
	n.romanOnce.Do(func() {
		d := n.derive()
		if d.nonEng == "" || !d.scripts.HasAny(romanizable...) {
			return
		}
		r := romanization{}
		if d.scripts.Has(script.Korean) {
			r.pattern = romanize.HangulPattern(n.NonEng)
		}
		if d.scripts.HasAny(script.Japanese, script.CJK) {
			r.candidates = romanize.Default().Candidates(d.scripts, n.NonEng)
		}
		if own := textnorm.NoSpace(n.Romanized); own != "" && !slices.Contains(r.candidates, own) {
			r.candidates = append(r.candidates, own)
		}
		n.roman = r
	})
	return &n.roman
}

// HasRomanization reports whether text, once normalized with whitespace
// removed, is an accepted romanization of the native-script form.
func (n *Name) HasRomanization(text string) bool {
	return n.HasNormalizedRomanization(textnorm.NoSpace(text))
}

// HasNormalizedRomanization is HasRomanization for a candidate that is already
// normalized with whitespace removed. Hangul is checked against a pattern of
// every supported jamo spelling; Japanese and Han against the literal outputs
// of each romanizer backend plus the Name's own Romanized form.
func (n *Name) HasNormalizedRomanization(candidate string) bool {
	if n == nil || candidate == "" {
		return false
	}
	r := n.romanizations()
	if r.pattern != nil && r.pattern.MatchString(candidate) {
		return true
	}
	return slices.Contains(r.candidates, candidate)
}
