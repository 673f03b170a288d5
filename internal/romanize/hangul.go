package romanize

import (
	"regexp"
	"strings"

	"namesake/internal/textnorm"
)

const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
	jungCount   = 21
	jongCount   = 28
)

// Latin spellings per jamo. The first entry is the Revised Romanization form.
var (
	initials = [][]string{
		{"g", "k"},               // ㄱ
		{"kk", "gg", "k", "g"},   // ㄲ
		{"n"},                    // ㄴ
		{"d", "t"},               // ㄷ
		{"tt", "dd", "t", "d"},   // ㄸ
		{"r", "l"},               // ㄹ
		{"m"},                    // ㅁ
		{"b", "p"},               // ㅂ
		{"pp", "bb", "p", "b"},   // ㅃ
		{"s", "sh"},              // ㅅ
		{"ss", "s", "sh"},        // ㅆ
		{""},                     // ㅇ
		{"j", "ch", "z"},         // ㅈ
		{"jj", "j", "ch", "tch"}, // ㅉ
		{"ch", "c", "j"},         // ㅊ
		{"k", "kh"},              // ㅋ
		{"t", "th"},              // ㅌ
		{"p", "ph", "f"},         // ㅍ
		{"h"},                    // ㅎ
	}
	medials = [][]string{
		{"a"},               // ㅏ
		{"ae", "e", "ai"},   // ㅐ
		{"ya"},              // ㅑ
		{"yae", "ye"},       // ㅒ
		{"eo", "o", "u"},    // ㅓ
		{"e"},               // ㅔ
		{"yeo", "yo", "yu"}, // ㅕ
		{"ye"},              // ㅖ
		{"o"},               // ㅗ
		{"wa"},              // ㅘ
		{"wae", "we"},       // ㅙ
		{"oe", "we", "oi"},  // ㅚ
		{"yo"},              // ㅛ
		{"u", "oo"},         // ㅜ
		{"wo", "weo", "wu"}, // ㅝ
		{"we"},              // ㅞ
		{"wi"},              // ㅟ
		{"yu", "yoo"},       // ㅠ
		{"eu", "u"},         // ㅡ
		{"ui", "eui", "i"},  // ㅢ
		{"i", "ee", "y"},    // ㅣ
	}
	finals = [][]string{
		{""},             // none
		{"k", "g"},       // ㄱ
		{"k", "kk"},      // ㄲ
		{"k", "gs"},      // ㄳ
		{"n"},            // ㄴ
		{"n", "nj"},      // ㄵ
		{"n", "nh"},      // ㄶ
		{"t", "d"},       // ㄷ
		{"l", "r"},       // ㄹ
		{"k", "lg"},      // ㄺ
		{"m", "lm"},      // ㄻ
		{"l", "lb"},      // ㄼ
		{"l", "ls"},      // ㄽ
		{"l", "lt"},      // ㄾ
		{"p", "lp"},      // ㄿ
		{"l", "lh"},      // ㅀ
		{"m"},            // ㅁ
		{"p", "b"},       // ㅂ
		{"p", "bs"},      // ㅄ
		{"t", "s"},       // ㅅ
		{"t", "ss", "s"}, // ㅆ
		{"ng"},           // ㅇ
		{"t", "j"},       // ㅈ
		{"t", "ch"},      // ㅊ
		{"k"},            // ㅋ
		{"t", "th"},      // ㅌ
		{"p", "f"},       // ㅍ
		{"t", "h"},       // ㅎ
	}
)

type syllable struct {
	initial, medial, final int
}

func decompose(r rune) (syllable, bool) {
	if r < hangulFirst || r > hangulLast {
		return syllable{}, false
	}
	idx := int(r - hangulFirst)
	return syllable{
		initial: idx / (jungCount * jongCount),
		medial:  (idx / jongCount) % jungCount,
		final:   idx % jongCount,
	}, true
}

// hangulKey reduces text to the form Latin candidates are compared in, so
// tokens the normalizer drops (such as "OST") never reach the pattern.
func hangulKey(text string) string {
	return textnorm.NoSpace(text)
}

func writeAlternatives(b *strings.Builder, alts []string) {
	if len(alts) == 1 {
		b.WriteString(alts[0])
		return
	}
	b.WriteString("(?:")
	b.WriteString(strings.Join(alts, "|"))
	b.WriteByte(')')
}

// HangulPattern compiles an anchored expression that accepts any supported
// romanization of text. Text is normalized with whitespace removed first, and
// the remaining non-Hangul characters must appear literally. Candidates are
// expected in the same form. Returns nil if text has no Hangul syllables.
func HangulPattern(text string) *regexp.Regexp {
	var b strings.Builder
	b.WriteByte('^')
	found := false
	for _, r := range hangulKey(text) {
		syl, ok := decompose(r)
		if !ok {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		found = true
		writeAlternatives(&b, initials[syl.initial])
		writeAlternatives(&b, medials[syl.medial])
		writeAlternatives(&b, finals[syl.final])
	}
	if !found {
		return nil
	}
	b.WriteByte('$')
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil
	}
	return re
}

// hangulRomanizer renders Hangul with the first (Revised Romanization) spelling
// of each jamo. Other characters pass through.
type hangulRomanizer struct{}

func (hangulRomanizer) Romanize(text string) string {
	var b strings.Builder
	for _, r := range text {
		syl, ok := decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(initials[syl.initial][0])
		b.WriteString(medials[syl.medial][0])
		b.WriteString(finals[syl.final][0])
	}
	return b.String()
}
