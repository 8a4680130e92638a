package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases. All list
// operations return matches in id order; bulk runs and conflict checks rely
// on that for reproducible results.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Match, error)
	// ListByFacilityDate returns every match already placed at the facility
	// on the given calendar date, across all leagues.
	ListByFacilityDate(ctx context.Context, facilityID string, date time.Time) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, matchID string) error
}
