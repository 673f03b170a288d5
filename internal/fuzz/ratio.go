package fuzz

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio returns 2*LCS/(len(a)+len(b)) as a rounded percentage, counting runes.
// Two empty strings score 0.
func Ratio(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 0
	}
	if a == b {
		return 100
	}
	return round(200 * float64(edlib.LCS(a, b)) / float64(total))
}

// PartialRatio returns the best Ratio between the shorter string and every
// window of the longer string with the same rune length.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}
	if len(short) == len(long) {
		return Ratio(a, b)
	}
	shortStr := string(short)
	best := 0
	for start := 0; start+len(short) <= len(long); start++ {
		score := Ratio(shortStr, string(long[start:start+len(short)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

func scorer(partial bool) func(a, b string) int {
	if partial {
		return PartialRatio
	}
	return Ratio
}

func sortedTokens(s string) []string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return fields
}

// TokenSortRatio compares the strings after sorting their whitespace-separated tokens.
func TokenSortRatio(a, b string, partial bool) int {
	return scorer(partial)(strings.Join(sortedTokens(a), " "), strings.Join(sortedTokens(b), " "))
}

// TokenSetRatio compares the shared tokens against each side's full token set,
// so extra words on one side cost less than in TokenSortRatio.
func TokenSetRatio(a, b string, partial bool) int {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	var shared, onlyA, onlyB []string
	for token := range setA {
		if _, ok := setB[token]; ok {
			shared = append(shared, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if _, ok := setA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(shared, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	score := scorer(partial)
	return max(score(sect, combinedA), score(sect, combinedB), score(combinedA, combinedB))
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

const tokenScale = 0.95

// partialScale shrinks partial scores as the length ratio grows so that only
// full-length agreement can approach 100.
func partialScale(lenRatio float64) float64 {
	switch {
	case lenRatio > 3:
		return 0.25
	case lenRatio > 2:
		return 0.45
	case lenRatio > 1.5:
		return 0.625
	default:
		return 0.75
	}
}

// WeightedRatio returns a similarity in [0,100] for two normalized strings.
// Either string empty scores 0; identical strings score 100. When one string
// is at least 1.5 times longer than the other, partial measures are used and
// scaled by partialScale; token measures are further scaled by 0.95.
// The result is deterministic for an ordered pair but not guaranteed symmetric.
func WeightedRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	base := float64(Ratio(a, b))
	lenA, lenB := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	lenRatio := float64(max(lenA, lenB)) / float64(min(lenA, lenB))

	if lenRatio >= 1.5 {
		scale := partialScale(lenRatio)
		partial := float64(PartialRatio(a, b)) * scale
		sortScore := float64(TokenSortRatio(a, b, true)) * tokenScale * scale
		setScore := float64(TokenSetRatio(a, b, true)) * tokenScale * scale
		return round(max(base, partial, sortScore, setScore))
	}

	sortScore := float64(TokenSortRatio(a, b, false)) * tokenScale
	setScore := float64(TokenSetRatio(a, b, false)) * tokenScale
	return round(max(base, sortScore, setScore))
}

func round(v float64) int {
	return int(math.Round(v))
}
