// Package store holds all feedback records in process memory. It is the
// only shared-mutation point in the service: every handler goroutine goes
// through the same Store instance.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/models"
)

// Store is an in-memory collection of feedback records plus a monotonically
// increasing id generator. The zero value is not usable; call New.
type Store struct {
	mu      sync.Mutex
	records []models.Feedback
	nextID  int64
}

func New() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next id, stamps the current time and stores the record,
// returning a copy of it. Id assignment and append happen under one lock so
// concurrent submissions can never observe or assign the same id. Append
// does no validation; callers are expected to have validated input already.
func (s *Store) Append(email, message string) models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.Feedback{
		ID:          s.nextID,
		Email:       email,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	}
	s.records = append(s.records, rec)
	s.nextID++
	return rec
}

// List returns records in insertion order, windowed by [offset, offset+limit).
// A non-empty emailFilter keeps only records whose email matches it exactly,
// ignoring case. The returned total counts the filtered set so callers can
// build pagination metadata. An offset past the end yields an empty page,
// not an error.
func (s *Store) List(emailFilter string, offset, limit int) ([]models.Feedback, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.records
	if emailFilter != "" {
		want := strings.ToLower(emailFilter)
		filtered = make([]models.Feedback, 0)
		for _, rec := range s.records {
			if strings.ToLower(rec.Email) == want {
				filtered = append(filtered, rec)
			}
		}
	}
	total := len(filtered)

	if offset >= total || limit <= 0 {
		return []models.Feedback{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]models.Feedback, end-offset)
	copy(page, filtered[offset:end])
	return page, total
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
