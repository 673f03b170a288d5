package matcher

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"namesake/internal/logging"
	"namesake/internal/name"
)

// ErrEmptyQuery is returned when the query name carries no identity.
var ErrEmptyQuery = errors.New("query name is empty")

// Candidate is a reference name to score against the query.
type Candidate struct {
	ID   string
	Name *name.Name
}

// Result is the outcome for one candidate.
type Result struct {
	Candidate Candidate
	Score     int
	Scores    []int
	Matched   bool
}

// Matcher scores candidates concurrently.
type Matcher struct {
	logger    *slog.Logger
	workers   int
	matchOpts []name.MatchOption
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWorkers bounds the number of concurrent scoring goroutines. Values
// below one fall back to GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(m *Matcher) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

// WithMatchOptions sets the thresholds and aggregate used for every candidate.
func WithMatchOptions(opts ...name.MatchOption) Option {
	return func(m *Matcher) {
		m.matchOpts = append(m.matchOpts, opts...)
	}
}

// New constructs a Matcher. A nil logger discards output.
func New(logger *slog.Logger, opts ...Option) *Matcher {
	m := &Matcher{
		logger:  logging.NewComponentLogger(logger, "matcher"),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match evaluates query against every candidate and returns one Result per
// candidate, best first.
func (m *Matcher) Match(ctx context.Context, query *name.Name, candidates []Candidate) ([]Result, error) {
	if query.IsZero() {
		return nil, ErrEmptyQuery
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	results := make([]Result, len(candidates))
	jobs := make(chan int)
	workers := min(m.workers, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = m.evaluate(query, candidates[idx])
			}
		}()
	}

feed:
	for idx := range candidates {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("match candidates: %w", err)
	}

	slices.SortStableFunc(results, compareResults)
	m.logSummary(query, results)
	return results, nil
}

// Best returns the highest scoring matched candidate.
func (m *Matcher) Best(ctx context.Context, query *name.Name, candidates []Candidate) (Result, bool, error) {
	results, err := m.Match(ctx, query, candidates)
	if err != nil {
		return Result{}, false, err
	}
	if len(results) == 0 || !results[0].Matched {
		return Result{}, false, nil
	}
	return results[0], true, nil
}

func (m *Matcher) evaluate(query *name.Name, candidate Candidate) Result {
	eval := query.Evaluate(candidate.Name, m.matchOpts...)
	m.logger.Debug("candidate scored",
		logging.String("candidate_id", candidate.ID),
		logging.String("candidate", candidate.Name.String()),
		logging.Int("score", eval.Score),
		logging.Int("signals", len(eval.Scores)),
		logging.Bool("matched", eval.Matched))
	return Result{
		Candidate: candidate,
		Score:     eval.Score,
		Scores:    eval.Scores,
		Matched:   eval.Matched,
	}
}

func compareResults(a, b Result) int {
	if a.Matched != b.Matched {
		if a.Matched {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := name.Compare(a.Candidate.Name, b.Candidate.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Candidate.ID, b.Candidate.ID)
}

func (m *Matcher) logSummary(query *name.Name, results []Result) {
	matched := 0
	for _, r := range results {
		if r.Matched {
			matched++
		}
	}
	attrs := []logging.Attr{
		logging.String("query", query.String()),
		logging.Int("candidates", len(results)),
		logging.Int("matched", matched),
	}
	if matched == 0 {
		attrs = append(attrs, logging.DecisionAttrs("name_match", "no_match", "no candidate reached the threshold")...)
		m.logger.Info("candidate matching summary", logging.Args(attrs...)...)
		return
	}
	best := results[0]
	attrs = append(attrs,
		logging.String("best_id", best.Candidate.ID),
		logging.String("best", best.Candidate.Name.String()),
		logging.Int("best_score", best.Score))
	attrs = append(attrs, logging.DecisionAttrs("name_match", "matched", "best candidate reached the threshold")...)
	m.logger.Info("candidate matching summary", logging.Args(attrs...)...)
}
