package romanize

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// pinyinRomanizer renders Han ideographs as toneless pinyin. Characters without
// a reading are kept so mixed text still romanizes positionally.
type pinyinRomanizer struct {
	args pinyin.Args
}

func newPinyinRomanizer() pinyinRomanizer {
	args := pinyin.NewArgs()
	args.Style = pinyin.Normal
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return pinyinRomanizer{args: args}
}

func (p pinyinRomanizer) Romanize(text string) string {
	return strings.Join(pinyin.LazyPinyin(text, p.args), "")
}
