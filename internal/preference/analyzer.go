// Package preference turns a quiz selection history into a tag based
// preference profile.
//
// The Analyzer is a pure transform: it reads the selections and the design
// lookup it is given, allocates a fresh ResultsProfile and keeps no state
// between calls, so one Analyzer can serve concurrent requests.
package preference

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNilSelections = errors.New("preference: selections must not be nil")
	ErrNilDesigns    = errors.New("preference: design lookup must not be nil")
)

type Analyzer struct {
	policy Policy
	logger *zap.Logger
}

type Option func(*Analyzer)

func WithPolicy(p Policy) Option {
	return func(a *Analyzer) { a.policy = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{policy: DefaultPolicy(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Policy() Policy {
	return a.policy
}

// Analyze builds a ResultsProfile. An empty selection slice yields a valid
// empty profile; a nil slice or lookup is an invalid invocation.
func (a *Analyzer) Analyze(selections []Selection, designs DesignLookup, completedAt time.Time) (*ResultsProfile, error) {
	if selections == nil {
		return nil, ErrNilSelections
	}
	if designs == nil {
		return nil, ErrNilDesigns
	}

	tally := Tally(selections, designs, a.logger)
	prefs, strengths := a.policy.Score(tally)
	summary, recs := a.policy.Summarize(prefs, strengths)

	if tally.Skipped > 0 {
		a.logger.Info("profile built with unresolved selections",
			zap.Int("selections", tally.Selections),
			zap.Int("skipped", tally.Skipped))
	}

	return &ResultsProfile{
		Preferences:        prefs,
		StrengthScores:     strengths,
		Summary:            summary,
		TopRecommendations: recs,
		Metadata: ProfileMetadata{
			TotalSelections:   tally.Selections,
			SkippedSelections: tally.Skipped,
			CompletedAt:       completedAt,
		},
	}, nil
}
