// internal/results/runs.go

package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run id has no record.
var ErrRunNotFound = errors.New("run not found")

// RunSummary is one row of the runs listing.
type RunSummary struct {
	ID          string    `json:"id" yaml:"id"`
	Oracle      string    `json:"oracle" yaml:"oracle"`
	Strategy    string    `json:"strategy" yaml:"strategy"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	StartedAt   time.Time `json:"startedAt" yaml:"started_at"`
	Games       int       `json:"games" yaml:"games"`
	Wins        int       `json:"wins" yaml:"wins"`
}

// SaveBatch stores b and all its games in one transaction.
func (d *DB) SaveBatch(ctx context.Context, b bench.Batch) error {
	settings, err := json.Marshal(b.Settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
        INSERT INTO runs (id, oracle, strategy, fingerprint, started_at, settings)
        VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Oracle, b.Strategy, b.Fingerprint, b.StartedAt.UTC().Format(timeLayout), string(settings),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO games (run_id, seq, answer, won, guesses, num_guesses, duration_ns, reason)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, g := range b.Games {
		if _, err := stmt.ExecContext(ctx,
			b.ID, i, g.Answer, g.Won, strings.Join(g.Guesses, ","), g.NumGuesses(), g.Duration.Nanoseconds(), string(g.Reason),
		); err != nil {
			return fmt.Errorf("insert game %s: %w", g.Answer, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	d.log.Info().Str("run", b.ID).Int("games", len(b.Games)).Msg("benchmark run saved")
	return nil
}

// LoadBatch reads a stored run back.
func (d *DB) LoadBatch(ctx context.Context, id string) (bench.Batch, error) {
	var (
		b        bench.Batch
		started  string
		settings string
	)
	err := d.db.QueryRowContext(ctx, `
        SELECT id, oracle, strategy, fingerprint, started_at, settings
        FROM runs WHERE id=?`, id,
	).Scan(&b.ID, &b.Oracle, &b.Strategy, &b.Fingerprint, &started, &settings)
	if errors.Is(err, sql.ErrNoRows) {
		return bench.Batch{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return bench.Batch{}, err
	}
	if b.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return bench.Batch{}, fmt.Errorf("parse started_at: %w", err)
	}
	if err := json.Unmarshal([]byte(settings), &b.Settings); err != nil {
		return bench.Batch{}, fmt.Errorf("decode settings: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, `
        SELECT answer, won, guesses, duration_ns, reason
        FROM games WHERE run_id=? ORDER BY seq ASC`, id)
	if err != nil {
		return bench.Batch{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			g       bench.GameResult
			guesses string
			dur     int64
			reason  string
		)
		if err := rows.Scan(&g.Answer, &g.Won, &guesses, &dur, &reason); err != nil {
			return bench.Batch{}, err
		}
		if guesses != "" {
			g.Guesses = strings.Split(guesses, ",")
		}
		g.Duration = time.Duration(dur)
		g.Reason = solver.Reason(reason)
		b.Games = append(b.Games, g)
	}
	return b, rows.Err()
}

// ListRuns returns the most recent runs first, optionally filtered by strategy.
func (d *DB) ListRuns(ctx context.Context, strategy string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.db.QueryContext(ctx, `
        SELECT r.id, r.oracle, r.strategy, r.fingerprint, r.started_at,
               COUNT(g.seq), COALESCE(SUM(g.won), 0)
        FROM runs r LEFT JOIN games g ON g.run_id = r.id
        WHERE ? = '' OR r.strategy = ?
        GROUP BY r.id
        ORDER BY r.started_at DESC, r.id ASC
        LIMIT ?`, strategy, strategy, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunSummary, 0, limit)
	for rows.Next() {
		var (
			r       RunSummary
			started string
		)
		if err := rows.Scan(&r.ID, &r.Oracle, &r.Strategy, &r.Fingerprint, &started, &r.Games, &r.Wins); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
