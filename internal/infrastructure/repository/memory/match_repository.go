package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		items[m.ID] = cloneMatch(m)
	}

	return &MatchRepository{items: items}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) ListByLeague(_ context.Context, leagueID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m match.Match) bool { return m.LeagueID == leagueID }), nil
}

func (r *MatchRepository) ListByFacilityDate(_ context.Context, facilityID string, date time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := facility.Day(date)
	return r.collect(func(m match.Match) bool {
		return m.FacilityID == facilityID && m.Date != nil && facility.Day(*m.Date).Equal(day)
	}), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[m.ID]; exists {
		return fmt.Errorf("match %s already exists", m.ID)
	}
	r.items[m.ID] = cloneMatch(m)

	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[m.ID]; !exists {
		return fmt.Errorf("match %s does not exist", m.ID)
	}
	r.items[m.ID] = cloneMatch(m)

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[matchID]; !exists {
		return fmt.Errorf("match %s does not exist", matchID)
	}
	delete(r.items, matchID)

	return nil
}

// collect must be called with at least a read lock held.
func (r *MatchRepository) collect(keep func(match.Match) bool) []match.Match {
	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if keep(m) {
			out = append(out, cloneMatch(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func cloneMatch(m match.Match) match.Match {
	out := m
	if m.Date != nil {
		d := *m.Date
		out.Date = &d
	}
	if m.ScheduledTimes != nil {
		out.ScheduledTimes = append([]string(nil), m.ScheduledTimes...)
	}
	return out
}
