package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"xbrl_tagging/pkg/core/pipeline"
)

// RunStore persists filing tagging runs. DB primary, file system fallback
// when no pool is configured.
type RunStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// RunRecord wraps one persisted run with its lookup keys.
type RunRecord struct {
	RunID            string                 `json:"run_id"`
	EntityIdentifier string                 `json:"entity_identifier"`
	PeriodEnd        string                 `json:"period_end"`
	IssueCount       int                    `json:"issue_count"`
	Result           *pipeline.FilingResult `json:"result"`
	SavedAt          time.Time              `json:"saved_at"`
}

// NewRunStore creates a run store. If pool is nil it falls back to a
// file-based store under dir (default .cache/tagging_runs).
func NewRunStore(pool *pgxpool.Pool, dir string) *RunStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "tagging_runs")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] run store dir: %v\n", err)
		}
	}
	return &RunStore{pool: pool, fileDir: dir}
}

// Save persists one run result.
func (s *RunStore) Save(ctx context.Context, entityIdentifier string, result *pipeline.FilingResult) error {
	record := RunRecord{
		RunID:            result.RunID,
		EntityIdentifier: entityIdentifier,
		IssueCount:       len(result.Issues),
		Result:           result,
		SavedAt:          time.Now(),
	}
	if len(result.Contexts) > 0 {
		record.PeriodEnd = result.Contexts[0].Period.EndDate
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}

	if s.pool != nil {
		query := `
			INSERT INTO tagging_runs (run_id, entity_identifier, period_end, issue_count, data, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (run_id) DO UPDATE SET data = EXCLUDED.data, issue_count = EXCLUDED.issue_count
		`
		_, err := s.pool.Exec(ctx, query, record.RunID, record.EntityIdentifier, record.PeriodEnd, record.IssueCount, payload)
		if err != nil {
			return fmt.Errorf("failed to save run to db: %w", err)
		}
		return nil
	}

	if s.fileDir != "" {
		path := filepath.Join(s.fileDir, record.RunID+".json")
		if err := os.WriteFile(path, payload, 0644); err != nil {
			return fmt.Errorf("failed to write run file: %w", err)
		}
	}
	return nil
}

// Get retrieves a run by its ID. Returns nil, nil on a miss.
func (s *RunStore) Get(ctx context.Context, runID string) (*RunRecord, error) {
	if s.pool != nil {
		query := `SELECT data FROM tagging_runs WHERE run_id = $1 LIMIT 1`
		var payload []byte
		if err := s.pool.QueryRow(ctx, query, runID).Scan(&payload); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to query run %s: %w", runID, err)
		}
		var record RunRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run record: %w", err)
		}
		return &record, nil
	}

	if s.fileDir != "" {
		path := filepath.Join(s.fileDir, runID+".json")
		payload, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read run file: %w", err)
		}
		var record RunRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run record: %w", err)
		}
		return &record, nil
	}

	return nil, nil
}

// ListByEntity returns run records for one UEN, newest first. File fallback
// scans the directory.
func (s *RunStore) ListByEntity(ctx context.Context, entityIdentifier string) ([]*RunRecord, error) {
	if s.pool != nil {
		query := `SELECT data FROM tagging_runs WHERE entity_identifier = $1 ORDER BY created_at DESC`
		rows, err := s.pool.Query(ctx, query, entityIdentifier)
		if err != nil {
			return nil, fmt.Errorf("failed to query runs: %w", err)
		}
		defer rows.Close()

		var records []*RunRecord
		for rows.Next() {
			var payload []byte
			if err := rows.Scan(&payload); err != nil {
				return nil, err
			}
			var record RunRecord
			if err := json.Unmarshal(payload, &record); err != nil {
				continue
			}
			records = append(records, &record)
		}
		return records, rows.Err()
	}

	if s.fileDir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(s.fileDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan run dir: %w", err)
	}
	var records []*RunRecord
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		payload, err := os.ReadFile(filepath.Join(s.fileDir, entry.Name()))
		if err != nil {
			continue
		}
		var record RunRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			continue
		}
		if record.EntityIdentifier == entityIdentifier {
			records = append(records, &record)
		}
	}
	return records, nil
}
