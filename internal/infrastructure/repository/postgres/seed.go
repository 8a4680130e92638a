package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/raoldfi/tennis-app-sub000/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo leagues, teams, and facilities into an empty
// database. It is a no-op when any league already exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (public_id, name, year, section, region, age_group, division,
	num_matches, num_lines_per_match, allow_split_lines, preferred_days, backup_days, start_date, end_date)
VALUES (:public_id, :name, :year, :section, :region, :age_group, :division,
	:num_matches, :num_lines_per_match, :allow_split_lines, :preferred_days, :backup_days, :start_date, :end_date)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":           l.ID,
			"name":                l.Name,
			"year":                l.Year,
			"section":             l.Section,
			"region":              l.Region,
			"age_group":           l.AgeGroup,
			"division":            l.Division,
			"num_matches":         l.NumMatches,
			"num_lines_per_match": l.NumLinesPerMatch,
			"allow_split_lines":   l.AllowSplitLines,
			"preferred_days":      weekdaysToArray(l.PreferredDays),
			"backup_days":         weekdaysToArray(l.BackupDays),
			"start_date":          nullTimeFromDate(l.StartDate),
			"end_date":            nullTimeFromDate(l.EndDate),
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, league_public_id, name, captain, home_facility_public_id, preferred_days)
VALUES (:public_id, :league_public_id, :name, :captain, :home_facility_public_id, :preferred_days)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":               t.ID,
			"league_public_id":        t.LeagueID,
			"name":                    t.Name,
			"captain":                 t.Captain,
			"home_facility_public_id": t.HomeFacilityID,
			"preferred_days":          weekdaysToArray(t.PreferredDays),
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, f := range memory.SeedFacilities() {
		schedule, err := encodeWeeklySchedule(f.WeeklySchedule)
		if err != nil {
			return fmt.Errorf("seed facility %s: %w", f.ID, err)
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO facilities (public_id, name, location, total_courts, weekly_schedule, unavailable_dates)
VALUES (:public_id, :name, :location, :total_courts, :weekly_schedule, :unavailable_dates)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":         f.ID,
			"name":              f.Name,
			"location":          f.Location,
			"total_courts":      f.TotalCourts,
			"weekly_schedule":   schedule,
			"unavailable_dates": datesToArray(f.UnavailableDates),
		})
		if err != nil {
			return fmt.Errorf("bind seed facility %s query: %w", f.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed facility %s: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
