// Package script classifies the writing systems used in a string.
//
// Names arrive as Latin (English), Hangul (Korean), kana (Japanese), Han
// ideographs (CJK), or a mix of these. Of reports the single category of a
// string, or Mixed when more than one script is present; Set exposes every
// category found so callers can refuse to compare names written in different
// script families. Digits, punctuation, symbols, and whitespace are neutral.
package script
