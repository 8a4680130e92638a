package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	qb "github.com/raoldfi/tennis-app-sub000/internal/platform/querybuilder"
)

type FacilityRepository struct {
	db *sqlx.DB
}

func NewFacilityRepository(db *sqlx.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

func (r *FacilityRepository) List(ctx context.Context) ([]facility.Facility, error) {
	query, args, err := qb.Select("*").From("facilities").
		Where(qb.IsNull("deleted_at")).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select facilities query: %w", err)
	}

	var rows []facilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select facilities: %w", err)
	}

	out := make([]facility.Facility, 0, len(rows))
	for _, row := range rows {
		f, err := facilityFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, facilityID string) (facility.Facility, bool, error) {
	query, args, err := qb.Select("*").From("facilities").
		Where(
			qb.Eq("public_id", facilityID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return facility.Facility{}, false, fmt.Errorf("build get facility by id query: %w", err)
	}

	var row facilityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return facility.Facility{}, false, nil
		}
		return facility.Facility{}, false, fmt.Errorf("get facility by id: %w", err)
	}

	f, err := facilityFromRow(row)
	if err != nil {
		return facility.Facility{}, false, err
	}

	return f, true, nil
}

func facilityFromRow(row facilityTableModel) (facility.Facility, error) {
	schedule, err := decodeWeeklySchedule(row.WeeklySchedule)
	if err != nil {
		return facility.Facility{}, fmt.Errorf("facility %s: %w", row.PublicID, err)
	}
	blackouts, err := arrayToDates(row.UnavailableDates)
	if err != nil {
		return facility.Facility{}, fmt.Errorf("facility %s: %w", row.PublicID, err)
	}

	return facility.Facility{
		ID:               row.PublicID,
		Name:             row.Name,
		Location:         row.Location,
		TotalCourts:      row.TotalCourts,
		WeeklySchedule:   schedule,
		UnavailableDates: blackouts,
	}, nil
}
