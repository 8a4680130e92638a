package match

import (
	"fmt"
	"time"
)

// Match is one team-versus-team meeting. Fixture generation creates it
// unscheduled (no facility, date, or times); the scheduler later fills in
// FacilityID, Date, and ScheduledTimes, or clears them again on unschedule.
//
// Scheduling status is always derived from those three fields, never stored
// as a flag, so it cannot drift.
type Match struct {
	ID             string
	LeagueID       string
	HomeTeamID     string
	VisitorTeamID  string
	FacilityID     string     // empty until placed
	Date           *time.Time // calendar date at midnight UTC
	ScheduledTimes []string   // one "15:04" start per line, ascending
	NumLines       int        // lines this match expects
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.LeagueID == "" {
		return fmt.Errorf("match league id is required")
	}
	if m.HomeTeamID == "" || m.VisitorTeamID == "" {
		return fmt.Errorf("match requires home and visitor teams")
	}
	if m.HomeTeamID == m.VisitorTeamID {
		return fmt.Errorf("match home and visitor teams must differ")
	}
	if m.NumLines < 1 {
		return fmt.Errorf("match num lines must be at least 1")
	}

	return nil
}

// HasPlacement reports whether the match has been given a facility and date,
// with or without line times.
func (m Match) HasPlacement() bool {
	return m.FacilityID != "" && m.Date != nil
}

// IsScheduled reports whether the match has a facility, a date, and at least
// one line time.
func (m Match) IsScheduled() bool {
	return m.HasPlacement() && len(m.ScheduledTimes) > 0
}

// IsFullyScheduled reports whether every expected line has a start time.
func (m Match) IsFullyScheduled() bool {
	return m.HasPlacement() && m.NumLines > 0 && len(m.ScheduledTimes) == m.NumLines
}

// IsPartiallyScheduled reports whether the match is placed but short of its
// expected lines. This includes the facility-and-date-only placement that
// partial scheduling produces.
func (m Match) IsPartiallyScheduled() bool {
	return m.HasPlacement() && len(m.ScheduledTimes) < m.NumLines
}

// Involves reports whether the given team plays in this match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.VisitorTeamID == teamID
}
