package name

import (
	"slices"

	"namesake/internal/fuzz"
)

const (
	// DefaultThreshold is the minimum aggregate score for a match.
	DefaultThreshold = 80
	// DefaultRomanizationScore is the signal added when one side romanizes to the other.
	DefaultRomanizationScore = 95

	// maxVersionDepth bounds version expansion so mutually referencing
	// versions cannot recurse forever.
	maxVersionDepth = 1
)

type matchConfig struct {
	threshold     int
	romanization  int
	aggregate     Aggregate
	otherVersions bool
}

func newMatchConfig(opts []MatchOption) matchConfig {
	cfg := matchConfig{
		threshold:     DefaultThreshold,
		romanization:  DefaultRomanizationScore,
		aggregate:     Max,
		otherVersions: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.aggregate == nil {
		cfg.aggregate = Max
	}
	return cfg
}

// MatchOption tunes Matches and the scoring helpers.
type MatchOption func(*matchConfig)

// WithThreshold sets the minimum aggregate score for a match.
func WithThreshold(threshold int) MatchOption {
	return func(c *matchConfig) { c.threshold = threshold }
}

// WithAggregate sets the pool reduction. Nil keeps Max.
func WithAggregate(agg Aggregate) MatchOption {
	return func(c *matchConfig) { c.aggregate = agg }
}

// WithRomanizationScore sets the score contributed by an accepted romanization.
func WithRomanizationScore(score int) MatchOption {
	return func(c *matchConfig) { c.romanization = score }
}

// WithoutOtherVersions stops the other name's versions from being expanded.
func WithoutOtherVersions() MatchOption {
	return func(c *matchConfig) { c.otherVersions = false }
}

// Evaluation is the outcome of scoring one pair of names.
type Evaluation struct {
	// Scores is the raw pool in signal order; empty when nothing was comparable.
	Scores  []int
	Score   int
	Matched bool
}

// Evaluate scores other and applies the aggregate and threshold in one pass.
func (n *Name) Evaluate(other *Name, opts ...MatchOption) Evaluation {
	cfg := newMatchConfig(opts)
	return n.evaluate(other, &cfg)
}

func (n *Name) evaluate(other *Name, cfg *matchConfig) Evaluation {
	pool := n.collect(nil, other, cfg, 0, cfg.otherVersions)
	if len(pool) == 0 {
		return Evaluation{}
	}
	score := cfg.aggregate(pool)
	return Evaluation{Scores: pool, Score: score, Matched: score >= cfg.threshold}
}

// Matches reports whether n and other denote the same entity.
func (n *Name) Matches(other *Name, opts ...MatchOption) bool {
	return n.Evaluate(other, opts...).Matched
}

// MatchesText compares n with bare text, treated as an English-only name.
func (n *Name) MatchesText(text string, opts ...MatchOption) bool {
	return n.Matches(&Name{English: text}, opts...)
}

// Scores returns the raw score pool gathered for other, in signal order.
func (n *Name) Scores(other *Name, opts ...MatchOption) []int {
	return n.Evaluate(other, opts...).Scores
}

// MatchScore returns the aggregate of the score pool, or 0 when it is empty.
func (n *Name) MatchScore(other *Name, opts ...MatchOption) int {
	return n.Evaluate(other, opts...).Score
}

func (n *Name) collect(pool []int, other *Name, cfg *matchConfig, depth int, otherVersions bool) []int {
	if n.IsZero() || other.IsZero() {
		return pool
	}
	pool = n.direct(pool, other, cfg)
	if depth >= maxVersionDepth {
		return pool
	}
	for _, v := range n.Versions {
		pool = v.collect(pool, other, cfg, depth+1, false)
	}
	if otherVersions {
		for _, v := range other.Versions {
			pool = n.collect(pool, v, cfg, depth+1, false)
		}
	}
	return pool
}

func (n *Name) direct(pool []int, other *Name, cfg *matchConfig) []int {
	self, them := n.derive(), other.derive()
	if self.nonEng != "" && them.nonEng != "" && self.scripts == them.scripts {
		pool = append(pool, fuzz.WeightedRatio(self.nonEng, them.nonEng))
	}
	if self.latin != "" && them.latin != "" {
		pool = append(pool, fuzz.WeightedRatio(self.latin, them.latin))
	}
	if self.nonEng != "" && them.latin != "" && n.HasNormalizedRomanization(them.latin) {
		pool = append(pool, cfg.romanization)
	}
	if them.nonEng != "" && self.latin != "" && other.HasNormalizedRomanization(self.latin) {
		pool = append(pool, cfg.romanization)
	}
	return pool
}

// Scored pairs a candidate with its aggregate score.
type Scored struct {
	Name  *Name
	Score int
}

// BestMatches scores every candidate and returns those at or above the
// threshold, highest score first. Ties are ordered by (English, NonEng).
func (n *Name) BestMatches(others []*Name, opts ...MatchOption) []Scored {
	cfg := newMatchConfig(opts)
	var out []Scored
	for _, other := range others {
		if eval := n.evaluate(other, &cfg); eval.Matched {
			out = append(out, Scored{Name: other, Score: eval.Score})
		}
	}
	slices.SortStableFunc(out, func(a, b Scored) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return Compare(a.Name, b.Name)
	})
	return out
}

// BestMatch returns the highest scoring candidate at or above the threshold.
func (n *Name) BestMatch(others []*Name, opts ...MatchOption) (*Name, int, bool) {
	matches := n.BestMatches(others, opts...)
	if len(matches) == 0 {
		return nil, 0, false
	}
	return matches[0].Name, matches[0].Score, true
}

// IsVersionOf compares English (with translation fallback) and NonEng exactly.
// With partial, one agreeing field is enough. Otherwise at least one must
// agree and none may conflict.
func (n *Name) IsVersionOf(other *Name, partial bool) bool {
	if n == nil || other == nil {
		return false
	}
	agree, conflict := 0, 0
	for _, pair := range [][2]string{
		{n.EnglishOrTranslation(), other.EnglishOrTranslation()},
		{n.NonEng, other.NonEng},
	} {
		if pair[0] == "" || pair[1] == "" {
			continue
		}
		if pair[0] == pair[1] {
			agree++
		} else {
			conflict++
		}
	}
	if partial {
		return agree > 0
	}
	return agree > 0 && conflict == 0
}
