package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evanlowell/growlab/internal/scoring"
)

// Mode tags distinguishing the deterministic rules engine from the AI
// consult mode in saved records.
const (
	ModeGenerated = "generated"
	ModeAI        = "ai"
)

// AttemptRecord is one scored attempt as persisted per user.
type AttemptRecord struct {
	ID          string
	UserID      string
	Timestamp   time.Time
	Crop        string
	Points      int
	QuizCorrect bool
	Difficulty  int
	Sliders     scoring.Sliders
	Symptoms    []string
	Mode        string
}

// AttemptRepo reads and writes attempt records.
type AttemptRepo struct {
	db *sql.DB
}

// Save persists one attempt for a user. The record's ID and Timestamp are
// assigned here when unset.
func (r *AttemptRepo) Save(ctx context.Context, userID string, rec AttemptRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	slidersJSON, err := json.Marshal(rec.Sliders)
	if err != nil {
		return fmt.Errorf("marshal sliders: %w", err)
	}
	symptomsJSON, err := json.Marshal(rec.Symptoms)
	if err != nil {
		return fmt.Errorf("marshal symptoms: %w", err)
	}

	// seq preserves insertion order per user without relying on timestamps.
	query := `INSERT INTO attempts
		(id, user_id, created_at, crop, points, quiz_correct, difficulty, sliders, symptoms, mode, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM attempts WHERE user_id = ?))`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		userID,
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.Crop,
		rec.Points,
		boolToInt(rec.QuizCorrect),
		rec.Difficulty,
		string(slidersJSON),
		string(symptomsJSON),
		rec.Mode,
		userID,
	)
	if err != nil {
		return fmt.Errorf("inserting attempt: %w", err)
	}
	return nil
}

// List returns a user's attempts in insertion order.
func (r *AttemptRepo) List(ctx context.Context, userID string) ([]AttemptRecord, error) {
	query := `SELECT id, user_id, created_at, crop, points, quiz_correct, difficulty, sliders, symptoms, mode
		FROM attempts WHERE user_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		rec, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteAll removes every attempt for a user and reports how many were
// deleted.
func (r *AttemptRepo) DeleteAll(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attempts WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("deleting attempts: %w", err)
	}
	return res.RowsAffected()
}

func scanAttempt(rows *sql.Rows) (AttemptRecord, error) {
	var rec AttemptRecord
	var createdAt, slidersJSON, symptomsJSON string
	var quizCorrect int

	err := rows.Scan(&rec.ID, &rec.UserID, &createdAt, &rec.Crop, &rec.Points,
		&quizCorrect, &rec.Difficulty, &slidersJSON, &symptomsJSON, &rec.Mode)
	if err != nil {
		return rec, fmt.Errorf("scanning attempt: %w", err)
	}

	rec.Timestamp, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return rec, fmt.Errorf("parsing attempt timestamp: %w", err)
	}
	rec.QuizCorrect = quizCorrect != 0

	if err := json.Unmarshal([]byte(slidersJSON), &rec.Sliders); err != nil {
		return rec, fmt.Errorf("parsing sliders: %w", err)
	}
	if err := json.Unmarshal([]byte(symptomsJSON), &rec.Symptoms); err != nil {
		return rec, fmt.Errorf("parsing symptoms: %w", err)
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
