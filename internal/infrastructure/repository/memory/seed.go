package memory

import (
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
)

const (
	LeagueIDMensA   = "abq-2026-mens-a"
	LeagueIDWomens35 = "abq-2026-womens-35"

	FacilityIDHighPoint  = "fac-high-point"
	FacilityIDSierraVista = "fac-sierra-vista"
	FacilityIDTanoan     = "fac-tanoan"
)

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SeedLeagues() []league.League {
	start := seedDate(2026, time.March, 2)
	end := seedDate(2026, time.June, 28)

	return []league.League{
		{
			ID:               LeagueIDMensA,
			Name:             "Mens Singles A",
			Year:             2026,
			Section:          "Southwest",
			Region:           "Albuquerque",
			AgeGroup:         "18+",
			Division:         "A",
			NumMatches:       6,
			NumLinesPerMatch: 3,
			AllowSplitLines:  false,
			PreferredDays:    []time.Weekday{time.Saturday},
			BackupDays:       []time.Weekday{time.Sunday},
			StartDate:        &start,
			EndDate:          &end,
		},
		{
			ID:               LeagueIDWomens35,
			Name:             "Womens Doubles 3.5",
			Year:             2026,
			Section:          "Southwest",
			Region:           "Albuquerque",
			AgeGroup:         "40+",
			Division:         "3.5",
			NumMatches:       4,
			NumLinesPerMatch: 2,
			AllowSplitLines:  true,
			PreferredDays:    []time.Weekday{time.Monday, time.Wednesday},
			BackupDays:       []time.Weekday{time.Friday},
			StartDate:        &start,
			EndDate:          &end,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-ma-01", LeagueID: LeagueIDMensA, Name: "High Point Aces", Captain: "R. Marquez", HomeFacilityID: FacilityIDHighPoint},
		{ID: "team-ma-02", LeagueID: LeagueIDMensA, Name: "Sierra Smashers", Captain: "D. Chen", HomeFacilityID: FacilityIDSierraVista},
		{ID: "team-ma-03", LeagueID: LeagueIDMensA, Name: "Tanoan Topspins", Captain: "K. Okafor", HomeFacilityID: FacilityIDTanoan},
		{ID: "team-ma-04", LeagueID: LeagueIDMensA, Name: "Rio Grande Rallies", Captain: "S. Ortiz", HomeFacilityID: FacilityIDHighPoint},
		{ID: "team-w35-01", LeagueID: LeagueIDWomens35, Name: "Desert Doubles", Captain: "M. Tafoya", HomeFacilityID: FacilityIDSierraVista},
		{ID: "team-w35-02", LeagueID: LeagueIDWomens35, Name: "Sandia Slicers", Captain: "L. Begay", HomeFacilityID: FacilityIDTanoan},
	}
}

func SeedFacilities() []facility.Facility {
	weekendMornings := []facility.TimeSlot{
		{StartTime: "09:00", AvailableCourts: 4},
		{StartTime: "10:30", AvailableCourts: 4},
		{StartTime: "12:00", AvailableCourts: 2},
	}
	weekdayEvenings := []facility.TimeSlot{
		{StartTime: "17:30", AvailableCourts: 2},
		{StartTime: "19:00", AvailableCourts: 2},
	}

	return []facility.Facility{
		{
			ID:          FacilityIDHighPoint,
			Name:        "High Point Sports Center",
			Location:    "Albuquerque NE",
			TotalCourts: 8,
			WeeklySchedule: map[time.Weekday][]facility.TimeSlot{
				time.Monday:    weekdayEvenings,
				time.Wednesday: weekdayEvenings,
				time.Saturday:  weekendMornings,
				time.Sunday:    weekendMornings,
			},
			UnavailableDates: []time.Time{
				seedDate(2026, time.May, 23), // memorial day tournament
				seedDate(2026, time.May, 24),
			},
		},
		{
			ID:          FacilityIDSierraVista,
			Name:        "Sierra Vista Tennis Club",
			Location:    "Albuquerque NW",
			TotalCourts: 6,
			WeeklySchedule: map[time.Weekday][]facility.TimeSlot{
				time.Monday:   weekdayEvenings,
				time.Friday:   weekdayEvenings,
				time.Saturday: weekendMornings,
			},
		},
		{
			ID:          FacilityIDTanoan,
			Name:        "Tanoan Country Club",
			Location:    "Albuquerque NE",
			TotalCourts: 4,
			WeeklySchedule: map[time.Weekday][]facility.TimeSlot{
				time.Wednesday: weekdayEvenings,
				time.Saturday: {
					{StartTime: "09:00", AvailableCourts: 2},
					{StartTime: "10:30", AvailableCourts: 2},
				},
				time.Sunday: {
					{StartTime: "10:30", AvailableCourts: 2},
				},
			},
		},
	}
}
