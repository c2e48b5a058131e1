package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/olympics-access-go/internal/models"
)

// QueryRepository handles database operations for the query history
type QueryRepository struct {
	db *sql.DB
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(db *sql.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// Record inserts one successful query and returns the stored entry
func (r *QueryRepository) Record(codes []string, travelTime int, travelMode string, resolution, rowCount int, maxCount float64) (*models.QueryLogEntry, error) {
	entry := &models.QueryLogEntry{
		ID:         uuid.NewString(),
		VenueCodes: codes,
		TravelTime: travelTime,
		TravelMode: travelMode,
		Resolution: resolution,
		RowCount:   rowCount,
		MaxCount:   maxCount,
		CreatedAt:  time.Now().UTC(),
	}

	query := `INSERT INTO query_log
		(id, venue_codes, travel_time, travel_mode, resolution, row_count, max_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		entry.ID, strings.Join(entry.VenueCodes, ","), entry.TravelTime,
		entry.TravelMode, entry.Resolution, entry.RowCount, entry.MaxCount,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert query log entry: %w", err)
	}
	return entry, nil
}

// Recent retrieves the most recent entries, newest first
func (r *QueryRepository) Recent(limit int) ([]models.QueryLogEntry, error) {
	query := `SELECT id, venue_codes, travel_time, travel_mode, resolution,
		row_count, max_count, created_at
		FROM query_log ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []models.QueryLogEntry
	for rows.Next() {
		var e models.QueryLogEntry
		var codes string
		err := rows.Scan(
			&e.ID, &codes, &e.TravelTime, &e.TravelMode, &e.Resolution,
			&e.RowCount, &e.MaxCount, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query log entry: %w", err)
		}
		if codes != "" {
			e.VenueCodes = strings.Split(codes, ",")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
