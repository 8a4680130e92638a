package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
)

const dateLayout = "2006-01-02"

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func weekdaysToArray(days []time.Weekday) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(days))
	for _, d := range days {
		out = append(out, int64(d))
	}
	return out
}

func arrayToWeekdays(values pq.Int64Array) []time.Weekday {
	if len(values) == 0 {
		return nil
	}
	out := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		out = append(out, time.Weekday(v))
	}
	return out
}

func datesToArray(dates []time.Time) pq.StringArray {
	out := make(pq.StringArray, 0, len(dates))
	for _, d := range dates {
		out = append(out, facility.Day(d).Format(dateLayout))
	}
	return out
}

func arrayToDates(values pq.StringArray) ([]time.Time, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", v, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func nullTimeFromDate(date *time.Time) sql.NullTime {
	if date == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: facility.Day(*date), Valid: true}
}

func datePtrFromNullTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	d := facility.Day(value.Time)
	return &d
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
