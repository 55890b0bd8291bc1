package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one generated URL.
type Entry struct {
	ID          string   `json:"id"`
	CreatedAt   string   `json:"created_at"`
	Service     string   `json:"service"`
	Metric      string   `json:"metric"`
	Region      string   `json:"region"`
	ResourceIDs []string `json:"resource_ids"`
	URL         string   `json:"url"`
}

// NewEntryID returns a time-ordered unique id. UUIDv7 keeps insertion order
// scannable without a separate sequence column.
func NewEntryID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Append records one generated URL. ID and CreatedAt are filled in when
// empty.
func (s *Store) Append(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = NewEntryID()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, created_at, service, metric, region, resource_ids, url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt, e.Service, e.Metric, e.Region, strings.Join(e.ResourceIDs, ","), e.URL)
	if err != nil {
		return fmt.Errorf("recording history entry: %w", err)
	}
	return nil
}
