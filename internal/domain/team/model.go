package team

import (
	"fmt"
	"time"
)

// Team is one roster inside a league. League and home facility assignment
// are fixed once the team exists; editing them is an administrative concern
// outside the scheduling engine.
type Team struct {
	ID             string
	LeagueID       string
	Name           string
	Captain        string
	HomeFacilityID string
	PreferredDays  []time.Weekday // empty = no preference
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
