package store

import (
	"context"
	"fmt"
	"strings"
)

// List returns the most recent entries, newest first. limit <= 0 returns
// everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	q := `SELECT id, created_at, service, metric, region, resource_ids, url
	      FROM history ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ids string
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Service, &e.Metric, &e.Region, &ids, &e.URL); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		if ids != "" {
			e.ResourceIDs = strings.Split(ids, ",")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return entries, nil
}
