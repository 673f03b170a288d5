// Package name models a multi-script identity (an artist, group, album, or
// track) and decides whether two such identities are the same entity.
//
// A Name carries an English form, a native-script form, an optional
// romanization and literal translation, and alternate Versions that count as
// equivalent. Matches gathers a pool of independent signals: native-script
// similarity when both sides share a script family, Latin similarity,
// and romanization acceptance in either direction. Versions on both sides are
// expanded one level deep. The pool is reduced by an Aggregate and compared
// with a threshold; an empty pool never matches.
//
// Derived values (normalized forms, script sets, Hangul patterns, romanization
// candidates) are computed once per Name. After a Name has been matched, its
// fields must not be modified.
//
// FromEnclosed and Parse build Names from "Primary (Secondary)" text as found in
// tags and reference listings.
package name
