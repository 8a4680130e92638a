package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
)

type matchTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	LeagueID       string         `db:"league_public_id"`
	HomeTeamID     string         `db:"home_team_public_id"`
	VisitorTeamID  string         `db:"visitor_team_public_id"`
	FacilityID     sql.NullString `db:"facility_public_id"`
	MatchDate      sql.NullTime   `db:"match_date"`
	ScheduledTimes pq.StringArray `db:"scheduled_times"`
	NumLines       int            `db:"num_lines"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID       string         `db:"public_id"`
	LeagueID       string         `db:"league_public_id"`
	HomeTeamID     string         `db:"home_team_public_id"`
	VisitorTeamID  string         `db:"visitor_team_public_id"`
	FacilityID     sql.NullString `db:"facility_public_id"`
	MatchDate      sql.NullTime   `db:"match_date"`
	ScheduledTimes pq.StringArray `db:"scheduled_times"`
	NumLines       int            `db:"num_lines"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.PublicID,
		LeagueID:       row.LeagueID,
		HomeTeamID:     row.HomeTeamID,
		VisitorTeamID:  row.VisitorTeamID,
		FacilityID:     row.FacilityID.String,
		Date:           datePtrFromNullTime(row.MatchDate),
		ScheduledTimes: append([]string(nil), row.ScheduledTimes...),
		NumLines:       row.NumLines,
	}
}
