package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"thisorthat/internal/metrics"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
	mem "thisorthat/pkg/memcache"
	"thisorthat/pkg/utils"
)

// QuizSession is stored by value; updates always produce a fresh copy.
type QuizSession struct {
	ID          string
	Rounds      int
	Selections  []preference.Selection
	Shown       []string
	Pair        [2]string
	PairShownAt time.Time
	StartedAt   time.Time
	CompletedAt *time.Time
}

func (s QuizSession) Completed() bool {
	return s.CompletedAt != nil
}

func (s QuizSession) clone() QuizSession {
	s.Selections = slices.Clone(s.Selections)
	s.Shown = slices.Clone(s.Shown)
	return s
}

type QuizServiceInterface interface {
	Start(ctx context.Context, rounds int) (*response_models.QuizSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Choose(ctx context.Context, sessionID, selectedID string, timeToDecision *float64) (*response_models.QuizSessionResponse, error)
	// Session returns a copy of the stored session.
	Session(ctx context.Context, sessionID string) (QuizSession, error)
}

type QuizService struct {
	catalog       CatalogServiceInterface
	sessions      mem.Store[QuizSession]
	defaultRounds int
	metrics       *metrics.Metrics
	logger        *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
	now   func() time.Time
}

type QuizOption func(*QuizService)

// WithRand fixes the random source used to draw pairs.
func WithRand(r *rand.Rand) QuizOption {
	return func(s *QuizService) { s.rng = r }
}

func WithClock(now func() time.Time) QuizOption {
	return func(s *QuizService) { s.now = now }
}

func NewQuizService(
	catalog CatalogServiceInterface,
	sessions mem.Store[QuizSession],
	defaultRounds int,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...QuizOption,
) *QuizService {
	s := &QuizService{
		catalog:       catalog,
		sessions:      sessions,
		defaultRounds: defaultRounds,
		metrics:       m,
		logger:        logger.Named("quiz"),
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *QuizService) Start(ctx context.Context, rounds int) (*response_models.QuizSessionResponse, error) {
	if rounds <= 0 {
		rounds = s.defaultRounds
	}
	catalog := s.catalog.Snapshot()
	pair, err := s.nextPair(catalog, nil)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := QuizSession{
		ID:          uuid.NewString(),
		Rounds:      rounds,
		Selections:  []preference.Selection{},
		Shown:       []string{pair[0], pair[1]},
		Pair:        pair,
		PairShownAt: now,
		StartedAt:   now,
	}
	s.sessions.Set(session.ID, session)
	s.metrics.SessionStarted()
	s.logger.Debug("quiz session started", zap.String("session_id", session.ID), zap.Int("rounds", rounds))

	return sessionResponse(session, catalog), nil
}

func (s *QuizService) GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionResponse(session, s.catalog.Snapshot()), nil
}

func (s *QuizService) Session(ctx context.Context, sessionID string) (QuizSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return QuizSession{}, utils.ErrSessionNotFound
	}
	return session.clone(), nil
}

func (s *QuizService) Choose(ctx context.Context, sessionID, selectedID string, timeToDecision *float64) (*response_models.QuizSessionResponse, error) {
	catalog := s.catalog.Snapshot()

	updated, err := s.sessions.Update(sessionID, func(current QuizSession) (QuizSession, error) {
		if current.Completed() {
			return current, utils.ErrSessionComplete
		}
		var rejectedID string
		switch selectedID {
		case current.Pair[0]:
			rejectedID = current.Pair[1]
		case current.Pair[1]:
			rejectedID = current.Pair[0]
		default:
			return current, utils.ErrInvalidChoice
		}

		now := s.now().UTC()
		elapsed := now.Sub(current.PairShownAt).Seconds()
		if timeToDecision != nil {
			elapsed = *timeToDecision
		}

		next := current.clone()
		next.Selections = append(next.Selections, preference.Selection{
			SelectedID:            selectedID,
			RejectedID:            rejectedID,
			Timestamp:             now,
			RoundNumber:           len(current.Selections) + 1,
			TimeToDecisionSeconds: elapsed,
		})

		if len(next.Selections) >= next.Rounds {
			next.CompletedAt = &now
			next.Pair = [2]string{}
			return next, nil
		}

		pair, err := s.nextPair(catalog, next.Shown)
		if err != nil {
			return current, err
		}
		next.Pair = pair
		next.PairShownAt = now
		next.Shown = append(next.Shown, pair[0], pair[1])
		return next, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, mem.ErrNotFound):
			return nil, utils.ErrSessionNotFound
		case errors.Is(err, utils.ErrSessionComplete):
			s.metrics.ChoiceRecorded("complete")
		case errors.Is(err, utils.ErrInvalidChoice):
			s.metrics.ChoiceRecorded("invalid")
		}
		return nil, err
	}

	s.metrics.ChoiceRecorded("accepted")
	if updated.Completed() {
		s.logger.Debug("quiz session completed", zap.String("session_id", sessionID))
	}
	return sessionResponse(updated, catalog), nil
}

// nextPair draws two distinct designs, preferring designs not in shown.
func (s *QuizService) nextPair(catalog *Catalog, shown []string) ([2]string, error) {
	if catalog.Len() < 2 {
		return [2]string{}, utils.ErrCatalogTooSmall
	}

	seen := make(map[string]struct{}, len(shown))
	for _, id := range shown {
		seen[id] = struct{}{}
	}
	fresh := make([]string, 0, catalog.Len())
	for i := 0; i < catalog.Len(); i++ {
		if id := catalog.At(i).ID; !isSeen(seen, id) {
			fresh = append(fresh, id)
		}
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	var pair [2]string
	switch {
	case len(fresh) >= 2:
		i := s.rng.IntN(len(fresh))
		j := s.rng.IntN(len(fresh) - 1)
		if j >= i {
			j++
		}
		pair = [2]string{fresh[i], fresh[j]}
	case len(fresh) == 1:
		other := fresh[0]
		for other == fresh[0] {
			other = catalog.At(s.rng.IntN(catalog.Len())).ID
		}
		pair = [2]string{fresh[0], other}
	default:
		i := s.rng.IntN(catalog.Len())
		j := s.rng.IntN(catalog.Len() - 1)
		if j >= i {
			j++
		}
		pair = [2]string{catalog.At(i).ID, catalog.At(j).ID}
	}
	if pair[0] == pair[1] {
		return pair, fmt.Errorf("drew identical pair %q", pair[0])
	}
	return pair, nil
}

func isSeen(seen map[string]struct{}, id string) bool {
	_, ok := seen[id]
	return ok
}

func sessionResponse(session QuizSession, catalog *Catalog) *response_models.QuizSessionResponse {
	resp := &response_models.QuizSessionResponse{
		SessionID:   session.ID,
		Round:       len(session.Selections) + 1,
		TotalRounds: session.Rounds,
		Completed:   session.Completed(),
		StartedAt:   session.StartedAt,
		CompletedAt: session.CompletedAt,
	}
	if session.Completed() {
		resp.Round = session.Rounds
		return resp
	}
	for _, id := range session.Pair {
		if d, ok := catalog.Design(id); ok {
			resp.Pair = append(resp.Pair, designResponse(d))
		} else {
			resp.Pair = append(resp.Pair, response_models.DesignResponse{ID: id})
		}
	}
	return resp
}
