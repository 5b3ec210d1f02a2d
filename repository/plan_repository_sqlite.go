package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"

	"loan-wizard/domain"
)

const planSchema = `
CREATE TABLE IF NOT EXISTS plans (
    plan_id    TEXT PRIMARY KEY,
    plan_name  TEXT NOT NULL,
    form_data  TEXT NOT NULL,
    results    TEXT,
    created_at INTEGER NOT NULL
);
`

// PlanRepositorySQLite persists plans in a SQLite database. Form answers
// and result snapshots are stored as JSON documents; the persistence schema
// is not a query surface.
type PlanRepositorySQLite struct {
	db *sql.DB
}

// OpenPlanRepositorySQLite opens the plan store at path and ensures the
// schema exists.
func OpenPlanRepositorySQLite(path string) (*PlanRepositorySQLite, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(planSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure plans table: %w", err)
	}
	return &PlanRepositorySQLite{db: db}, nil
}

// Close closes the underlying database handle.
func (r *PlanRepositorySQLite) Close() error {
	return r.db.Close()
}

// Save inserts or replaces the plan record.
func (r *PlanRepositorySQLite) Save(ctx context.Context, plan domain.SavedPlan) error {
	formJSON, err := sonic.Marshal(plan.FormData)
	if err != nil {
		return fmt.Errorf("marshal form data: %w", err)
	}

	var results sql.NullString
	if plan.Results != nil {
		resultsJSON, err := sonic.Marshal(plan.Results)
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		results = sql.NullString{String: string(resultsJSON), Valid: true}
	}

	createdAt := plan.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO plans (plan_id, plan_name, form_data, results, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		plan.PlanID, plan.PlanName, string(formJSON), results, createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// Load returns the plan for the given id, or ErrPlanNotFound.
func (r *PlanRepositorySQLite) Load(ctx context.Context, planID string) (domain.SavedPlan, error) {
	var (
		plan      domain.SavedPlan
		formJSON  string
		results   sql.NullString
		createdAt int64
	)

	row := r.db.QueryRowContext(ctx,
		`SELECT plan_id, plan_name, form_data, results, created_at FROM plans WHERE plan_id = ?`,
		planID,
	)
	err := row.Scan(&plan.PlanID, &plan.PlanName, &formJSON, &results, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SavedPlan{}, ErrPlanNotFound
	}
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("query plan: %w", err)
	}

	if err := sonic.Unmarshal([]byte(formJSON), &plan.FormData); err != nil {
		return domain.SavedPlan{}, fmt.Errorf("unmarshal form data: %w", err)
	}
	if results.Valid {
		var snapshot domain.ResultsSnapshot
		if err := sonic.Unmarshal([]byte(results.String), &snapshot); err != nil {
			return domain.SavedPlan{}, fmt.Errorf("unmarshal results: %w", err)
		}
		plan.Results = &snapshot
	}
	plan.CreatedAt = time.UnixMilli(createdAt).UTC()
	return plan, nil
}
