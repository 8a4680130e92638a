package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestWeekdayArrayRoundTrip(t *testing.T) {
	days := []time.Weekday{time.Monday, time.Wednesday, time.Saturday}

	got := arrayToWeekdays(weekdaysToArray(days))
	if len(got) != len(days) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(days))
	}
	for i := range days {
		if got[i] != days[i] {
			t.Fatalf("weekday %d mismatch: got=%s want=%s", i, got[i], days[i])
		}
	}

	if arrayToWeekdays(nil) != nil {
		t.Fatalf("expected nil for empty array")
	}
}

func TestDateArrayRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, time.March, 7, 15, 30, 0, 0, time.UTC),
		time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC),
	}

	arr := datesToArray(dates)
	if arr[0] != "2026-03-07" || arr[1] != "2026-07-04" {
		t.Fatalf("unexpected formatted dates: %v", arr)
	}

	got, err := arrayToDates(arr)
	if err != nil {
		t.Fatalf("array to dates: %v", err)
	}
	if !got[0].Equal(time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected time-of-day stripped, got %v", got[0])
	}

	if _, err := arrayToDates(pq.StringArray{"07/03/2026"}); err == nil {
		t.Fatalf("expected error for malformed stored date")
	}
}

func TestNullTimeFromDate(t *testing.T) {
	if got := nullTimeFromDate(nil); got.Valid {
		t.Fatalf("expected invalid NullTime for nil date")
	}

	stamp := time.Date(2026, time.March, 7, 18, 45, 0, 0, time.UTC)
	got := nullTimeFromDate(&stamp)
	if !got.Valid || !got.Time.Equal(time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected midnight UTC date, got %+v", got)
	}

	back := datePtrFromNullTime(got)
	if back == nil || !back.Equal(got.Time) {
		t.Fatalf("round trip mismatch: %v vs %v", back, got.Time)
	}
	if datePtrFromNullTime(sql.NullTime{}) != nil {
		t.Fatalf("expected nil for invalid NullTime")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString(""); got.Valid {
		t.Fatalf("expected invalid NullString for empty value")
	}
	if got := nullString("fac-1"); !got.Valid || got.String != "fac-1" {
		t.Fatalf("unexpected NullString: %+v", got)
	}
}
