// Package romanize decides whether Latin text is a plausible transliteration
// of a non-Latin name.
//
// Hangul is handled with a permutation pattern: every syllable block is
// decomposed into its initial, medial and final jamo, and each jamo expands to
// the Latin spellings commonly used for it, so one compiled expression accepts
// "sonyeosidae", "sonyosidae" and "shonyeoshidae" alike. Japanese and Chinese
// text is handled by literal candidates, one per registered Romanizer backend
// (Hepburn kana tables and github.com/mozillazg/go-pinyin).
//
// Nothing here attempts linguistically complete transliteration; the goal is
// recognising the spellings that show up in tags and reference pages.
package romanize
