package catalog

import "namesake/internal/matcher"

// Candidates converts entries into matcher input keyed by entry ID.
func Candidates(entries []Entry) []matcher.Candidate {
	out := make([]matcher.Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, matcher.Candidate{ID: e.ID, Name: e.Name})
	}
	return out
}
