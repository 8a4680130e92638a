package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
)

type facilityTableModel struct {
	ID               int64          `db:"id"`
	PublicID         string         `db:"public_id"`
	Name             string         `db:"name"`
	Location         string         `db:"location"`
	TotalCourts      int            `db:"total_courts"`
	WeeklySchedule   []byte         `db:"weekly_schedule"`
	UnavailableDates pq.StringArray `db:"unavailable_dates"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	DeletedAt        *time.Time     `db:"deleted_at"`
}

func encodeWeeklySchedule(schedule map[time.Weekday][]facility.TimeSlot) ([]byte, error) {
	if schedule == nil {
		schedule = map[time.Weekday][]facility.TimeSlot{}
	}
	encoded, err := sonic.Marshal(schedule)
	if err != nil {
		return nil, fmt.Errorf("encode weekly schedule: %w", err)
	}
	return encoded, nil
}

func decodeWeeklySchedule(raw []byte) (map[time.Weekday][]facility.TimeSlot, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out map[time.Weekday][]facility.TimeSlot
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode weekly schedule: %w", err)
	}
	return out, nil
}
