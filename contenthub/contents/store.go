package contents

import (
	"sync"
	"time"
)

// Store is the authoritative in-memory registry of content records.
//
// All state is process-local and volatile: the store starts empty and is
// discarded on shutdown. Mutations are visible to subsequent reads
// immediately; no cross-record transaction exists.
type Store struct {
	mu      sync.RWMutex
	records map[int]*Record
	nextID  int
	now     func() time.Time
}

// creates an empty content record store
func NewStore() *Store {
	return &Store{
		records: make(map[int]*Record),
		nextID:  1,
		now:     time.Now,
	}
}

// allocates the next id and stores a pending record
func (s *Store) Create(topic string, contentType ContentType, sessionID string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &Record{
		ID:          s.nextID,
		Topic:       topic,
		ContentType: contentType,
		SessionID:   sessionID,
		CreatedAt:   s.now(),
	}

	s.nextID++
	s.records[record.ID] = record

	return snapshot(record)
}

// retrieves a record by id; the second return is false when the id is unknown
func (s *Store) Get(id int) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[id]
	if !exists {
		return nil, false
	}

	return snapshot(record), true
}

// sets the generated content on an existing record.
// A second write overwrites the previous content; callers that want a fresh
// generation are expected to create a new record instead.
func (s *Store) AttachGeneratedContent(id int, text string) (*Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[id]
	if !exists {
		return nil, false
	}

	record.GeneratedContent = text

	return snapshot(record), true
}

// marks a record public under the given share id, overwriting any earlier one
func (s *Store) MarkShared(id int, shareID string) (*Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[id]
	if !exists {
		return nil, false
	}

	record.ShareID = shareID
	record.IsPublic = true

	return snapshot(record), true
}

// finds the public record carrying the given share id.
// Both conditions are required: a record whose share id matches but whose
// public flag was never set does not resolve.
func (s *Store) FindByShareID(shareID string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.ShareID == shareID && record.IsPublic {
			return snapshot(record), true
		}
	}

	return nil, false
}

// counts records created by the session within the calendar day containing
// the given time, using the half-open interval [startOfDay, startOfDay+24h)
func (s *Store) CountSessionRecordsOnDate(sessionID string, day time.Time) int {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0

	for _, record := range s.records {
		if record.SessionID != sessionID || record.SessionID == "" {
			continue
		}

		if !record.CreatedAt.Before(startOfDay) && record.CreatedAt.Before(endOfDay) {
			count++
		}
	}

	return count
}

// returns the number of records ever created
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// copies a record so callers never share memory with the store
func snapshot(record *Record) *Record {
	copied := *record
	return &copied
}
