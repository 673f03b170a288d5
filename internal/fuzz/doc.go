// Package fuzz scores how similar two normalized strings are on a 0-100 scale.
//
// The measures mirror the familiar fuzzywuzzy family: Ratio is the indel
// similarity built on the longest common subsequence (github.com/hbollon/go-edlib),
// PartialRatio slides the shorter string across the longer one, and the token
// sort/set variants ignore word order and repeated words. WeightedRatio combines
// them, scaling partial results down as the length gap grows so a short
// string contained in a long one scores well below an exact match.
package fuzz
