package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type leagueTableModel struct {
	ID               int64         `db:"id"`
	PublicID         string        `db:"public_id"`
	Name             string        `db:"name"`
	Year             int           `db:"year"`
	Section          string        `db:"section"`
	Region           string        `db:"region"`
	AgeGroup         string        `db:"age_group"`
	Division         string        `db:"division"`
	NumMatches       int           `db:"num_matches"`
	NumLinesPerMatch int           `db:"num_lines_per_match"`
	AllowSplitLines  bool          `db:"allow_split_lines"`
	PreferredDays    pq.Int64Array `db:"preferred_days"`
	BackupDays       pq.Int64Array `db:"backup_days"`
	StartDate        sql.NullTime  `db:"start_date"`
	EndDate          sql.NullTime  `db:"end_date"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
	DeletedAt        *time.Time    `db:"deleted_at"`
}
