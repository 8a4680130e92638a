package httpapi

import (
	"errors"
	"testing"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

func TestMatchStatusDerivation(t *testing.T) {
	date := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		m    match.Match
		want string
	}{
		{
			name: "unscheduled",
			m:    match.Match{ID: "m-1", NumLines: 3},
			want: "unscheduled",
		},
		{
			name: "fully scheduled",
			m: match.Match{
				ID: "m-1", NumLines: 3,
				FacilityID:     "fac-1",
				Date:           &date,
				ScheduledTimes: []string{"09:00", "09:00", "10:30"},
			},
			want: "scheduled",
		},
		{
			name: "placement only",
			m: match.Match{
				ID: "m-1", NumLines: 3,
				FacilityID: "fac-1",
				Date:       &date,
			},
			want: "partially_scheduled",
		},
		{
			name: "short of lines",
			m: match.Match{
				ID: "m-1", NumLines: 3,
				FacilityID:     "fac-1",
				Date:           &date,
				ScheduledTimes: []string{"09:00"},
			},
			want: "partially_scheduled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchStatus(tt.m); got != tt.want {
				t.Fatalf("matchStatus=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestMatchStatusPredicate(t *testing.T) {
	pred, err := matchStatusPredicate("unscheduled")
	if err != nil {
		t.Fatalf("build predicate: %v", err)
	}
	if !pred(match.Match{ID: "m-1", NumLines: 3}) {
		t.Fatalf("expected predicate to match an unscheduled match")
	}

	if _, err := matchStatusPredicate("cancelled"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-07")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	want := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date: got=%v want=%v", got, want)
	}

	if _, err := parseDate("07/03/2026"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad layout, got %v", err)
	}
}
