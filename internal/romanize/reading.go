package romanize

import (
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// unknownReading is the IPA dictionary placeholder for a missing feature.
const unknownReading = "*"

var (
	readingTokenizerOnce sync.Once
	readingTokenizer     *tokenizer.Tokenizer
	readingTokenizerErr  error
)

// japaneseTokenizer loads the IPA dictionary on first use.
func japaneseTokenizer() (*tokenizer.Tokenizer, error) {
	readingTokenizerOnce.Do(func() {
		readingTokenizer, readingTokenizerErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return readingTokenizer, readingTokenizerErr
}

// readingRomanizer gives kanji their Japanese reading: text is segmented with
// the IPA dictionary, each token is replaced by its katakana reading, and the
// result goes through the kana romanizer. Tokens without a reading keep their
// surface form.
type readingRomanizer struct {
	kana kanaRomanizer
}

func (r readingRomanizer) Romanize(text string) string {
	if text == "" {
		return text
	}
	t, err := japaneseTokenizer()
	if err != nil {
		return text
	}
	var b strings.Builder
	for _, token := range t.Tokenize(text) {
		if reading, ok := token.Reading(); ok && reading != "" && reading != unknownReading {
			b.WriteString(reading)
			continue
		}
		b.WriteString(token.Surface)
	}
	return r.kana.Romanize(b.String())
}
