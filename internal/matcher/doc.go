// Package matcher scores one query name against many reference candidates.
//
// Candidate scoring fans out over a bounded worker pool. Each candidate is
// evaluated independently, so a shared query Name is safe to use from every
// worker. Results come back sorted by score, then by name, then by ID, so
// output is stable regardless of scheduling. Cancellation is checked between
// candidates.
package matcher
