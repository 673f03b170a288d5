package name

import (
	"maps"
	"slices"
)

// Combine merges two names describing the same entity into a new Name.
//
// When no text component conflicts, the result holds the union of both names'
// components and Extra, plus any versions that conflict with the other side
// (versions the merged name already covers are dropped). When a component
// conflicts, a is kept and b, without its versions, is added as one of a's
// versions.
func Combine(a, b *Name) *Name {
	switch {
	case a == nil && b == nil:
		return &Name{}
	case a == nil:
		return b.clone()
	case b == nil:
		return a.clone()
	}

	merged, ok := mergeBasic(a, b)
	if !ok {
		out := a.clone()
		out.Versions = mergeVersions(a, b, true)
		return out
	}
	merged.Extra = mergeExtra(a.Extra, b.Extra)
	merged.Versions = mergeVersions(a, b, false)
	return merged
}

func mergeBasic(a, b *Name) (*Name, bool) {
	fields := [4][2]string{
		{a.English, b.English},
		{a.NonEng, b.NonEng},
		{a.Romanized, b.Romanized},
		{a.LitTranslation, b.LitTranslation},
	}
	var out [4]string
	for i, f := range fields {
		if f[0] != "" && f[1] != "" && f[0] != f[1] {
			return nil, false
		}
		out[i] = f[0]
		if out[i] == "" {
			out[i] = f[1]
		}
	}
	return &Name{English: out[0], NonEng: out[1], Romanized: out[2], LitTranslation: out[3]}, true
}

func conflicts(a, b *Name) bool {
	_, ok := mergeBasic(a, b)
	return !ok
}

func mergeVersions(a, b *Name, includeB bool) []*Name {
	var versions []*Name
	for _, v := range a.Versions {
		if v != nil && conflicts(v, b) {
			versions = append(versions, v)
		}
	}
	for _, v := range b.Versions {
		if v != nil && conflicts(v, a) {
			versions = append(versions, v)
		}
	}
	if includeB {
		bare := b.clone()
		bare.Versions = nil
		versions = append(versions, bare)
	}
	if len(versions) == 0 {
		return nil
	}
	return Dedupe(versions)
}

func mergeExtra(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// clone copies the exported fields into a fresh Name with empty caches.
// Versions are shared, not deep-copied.
func (n *Name) clone() *Name {
	return &Name{
		English:        n.English,
		NonEng:         n.NonEng,
		Romanized:      n.Romanized,
		LitTranslation: n.LitTranslation,
		Versions:       slices.Clone(n.Versions),
		Extra:          maps.Clone(n.Extra),
	}
}
