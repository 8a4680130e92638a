package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	qb "github.com/raoldfi/tennis-app-sub000/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, qb.IsNull("deleted_at"))
}

func (r *MatchRepository) ListByLeague(ctx context.Context, leagueID string) ([]match.Match, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
		qb.IsNull("deleted_at"),
	)
}

func (r *MatchRepository) ListByFacilityDate(ctx context.Context, facilityID string, date time.Time) ([]match.Match, error) {
	return r.list(ctx,
		qb.Eq("facility_public_id", facilityID),
		qb.Eq("match_date", facility.Day(date)),
		qb.IsNull("deleted_at"),
	)
}

func (r *MatchRepository) list(ctx context.Context, conditions ...qb.Condition) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	insertModel := matchInsertModel{
		PublicID:       m.ID,
		LeagueID:       m.LeagueID,
		HomeTeamID:     m.HomeTeamID,
		VisitorTeamID:  m.VisitorTeamID,
		FacilityID:     nullString(m.FacilityID),
		MatchDate:      nullTimeFromDate(m.Date),
		ScheduledTimes: append([]string(nil), m.ScheduledTimes...),
		NumLines:       m.NumLines,
	}

	query, args, err := qb.InsertModel("matches", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match %s: %w", m.ID, err)
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("matches").
		Set("facility_public_id", nullString(m.FacilityID)).
		Set("match_date", nullTimeFromDate(m.Date)).
		Set("scheduled_times", pq.StringArray(m.ScheduledTimes)).
		Set("num_lines", m.NumLines).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", m.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match %s: %w", m.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read update match %s result: %w", m.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s does not exist", m.ID)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete match %s: %w", matchID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read delete match %s result: %w", matchID, err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s does not exist", matchID)
	}

	return nil
}
