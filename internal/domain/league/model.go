package league

import (
	"fmt"
	"time"
)

// League groups the teams of one section/age-group/division for a season and
// carries the formatting rules fixture generation and scheduling obey.
type League struct {
	ID               string
	Name             string
	Year             int
	Section          string
	Region           string
	AgeGroup         string
	Division         string
	NumMatches       int // required matches per team
	NumLinesPerMatch int // court matches comprising one team match
	AllowSplitLines  bool
	PreferredDays    []time.Weekday
	BackupDays       []time.Weekday
	StartDate        *time.Time
	EndDate          *time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.NumMatches < 1 {
		return fmt.Errorf("league num matches must be at least 1")
	}
	if l.NumLinesPerMatch < 1 {
		return fmt.Errorf("league num lines per match must be at least 1")
	}
	if l.StartDate != nil && l.EndDate != nil && l.EndDate.Before(*l.StartDate) {
		return fmt.Errorf("league end date precedes start date")
	}

	return nil
}
