// Package textnorm canonicalizes names before they are compared.
//
// Normalize folds case, strips Latin diacritics while leaving composed Hangul
// and Han characters intact, turns punctuation into spaces, collapses
// whitespace, and drops standalone "OST" tokens so soundtrack labelling alone
// never decides a match. The result is stable: normalizing an already
// normalized string returns it unchanged.
package textnorm
