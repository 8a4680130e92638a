package postgres

import (
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	LeagueID       string        `db:"league_public_id"`
	Name           string        `db:"name"`
	Captain        string        `db:"captain"`
	HomeFacilityID string        `db:"home_facility_public_id"`
	PreferredDays  pq.Int64Array `db:"preferred_days"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}
