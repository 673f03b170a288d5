package romanize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	katakanaFirst = 0x30A1
	katakanaLast  = 0x30F6
	kanaOffset    = 0x60

	sokuon   = 'っ'
	longMark = 'ー'
)

var monographs = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "o", 'ん': "n",
	'ゔ': "vu",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo", 'ゎ': "wa",
}

// digraphs covers yōon (きゃ) and the extended combinations used for loanwords (ファ).
var digraphs = map[string]string{
	"ふぁ": "fa", "ふぃ": "fi", "ふぇ": "fe", "ふぉ": "fo",
	"てぃ": "ti", "でぃ": "di", "とぅ": "tu", "どぅ": "du",
	"うぃ": "wi", "うぇ": "we", "うぉ": "wo",
	"ゔぁ": "va", "ゔぃ": "vi", "ゔぇ": "ve", "ゔぉ": "vo",
	"しぇ": "she", "じぇ": "je", "ちぇ": "che",
}

func init() {
	stems := map[rune]string{
		'き': "ky", 'ぎ': "gy", 'に': "ny", 'ひ': "hy", 'び': "by",
		'ぴ': "py", 'み': "my", 'り': "ry", 'し': "sh", 'じ': "j",
		'ち': "ch", 'ぢ': "j",
	}
	smalls := map[rune]string{'ゃ': "a", 'ゅ': "u", 'ょ': "o"}
	for stem, latin := range stems {
		for small, vowel := range smalls {
			digraphs[string([]rune{stem, small})] = latin + vowel
		}
	}
}

func toHiragana(r rune) rune {
	if r >= katakanaFirst && r <= katakanaLast {
		return r - kanaOffset
	}
	return r
}

func lastVowel(s string) (byte, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case 'a', 'i', 'u', 'e', 'o':
			return s[i], true
		}
	}
	return 0, false
}

// kanaRomanizer renders hiragana and katakana in Hepburn. Half-width katakana
// is folded to full width first. Long vowels are written out ("shoujo",
// "suupaa") and other characters pass through.
type kanaRomanizer struct{}

func (kanaRomanizer) Romanize(text string) string {
	src := []rune(norm.NFC.String(width.Fold.String(text)))
	for i, r := range src {
		src[i] = toHiragana(r)
	}

	var b strings.Builder
	geminate := false
	for i := 0; i < len(src); i++ {
		r := src[i]
		switch r {
		case sokuon:
			geminate = true
			continue
		case longMark:
			if v, ok := lastVowel(b.String()); ok {
				b.WriteByte(v)
			}
			continue
		}

		var latin string
		if i+1 < len(src) {
			if d, ok := digraphs[string(src[i:i+2])]; ok {
				latin = d
				i++
			}
		}
		if latin == "" {
			m, ok := monographs[r]
			if !ok {
				geminate = false
				b.WriteRune(r)
				continue
			}
			latin = m
		}
		if geminate {
			switch {
			case strings.HasPrefix(latin, "ch"):
				b.WriteByte('t')
			case latin[0] != 'a' && latin[0] != 'i' && latin[0] != 'u' && latin[0] != 'e' && latin[0] != 'o' && latin[0] != 'n':
				b.WriteByte(latin[0])
			}
			geminate = false
		}
		b.WriteString(latin)
	}
	return b.String()
}
