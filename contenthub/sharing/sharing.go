// Package sharing mints and resolves public share links for generated
// content. It is a thin policy layer over the content record store.
package sharing

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"codeberg.org/socialhub/server/contenthub/contents"
)

var (
	// ErrNotFound is returned when no record exists for the given id, or when
	// no public record carries the given share id.
	ErrNotFound = errors.New("content not found")

	// ErrNotGenerated is returned when the record exists but the generation
	// step has not filled it in yet.
	ErrNotGenerated = errors.New("content not generated")
)

const shareIDRandomLength = 9

// Store is the subset of the content record store the registry needs
type Store interface {
	Get(id int) (*contents.Record, bool)
	MarkShared(id int, shareID string) (*contents.Record, bool)
	FindByShareID(shareID string) (*contents.Record, bool)
}

// Registry mints share ids and resolves them back to public records
type Registry struct {
	store Store
}

// creates a share registry over the given store
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// mints a share id for the identified record and marks it public.
// Fails with ErrNotFound for an unknown id and ErrNotGenerated for a pending
// record; neither failure mutates the record. Calling this twice mints a
// fresh id each time and only the newest one resolves.
func (r *Registry) CreateShareID(contentID int) (string, error) {
	record, exists := r.store.Get(contentID)
	if !exists {
		return "", ErrNotFound
	}

	if !record.Generated() {
		return "", ErrNotGenerated
	}

	shareID, err := newShareID()
	if err != nil {
		return "", fmt.Errorf("failed to generate share id: %w", err)
	}

	if _, ok := r.store.MarkShared(contentID, shareID); !ok {
		return "", ErrNotFound
	}

	return shareID, nil
}

// resolves a share id to its record; only records explicitly marked public
// resolve, everything else is ErrNotFound
func (r *Registry) Resolve(shareID string) (*contents.Record, error) {
	record, exists := r.store.FindByShareID(shareID)
	if !exists {
		return nil, ErrNotFound
	}

	return record, nil
}

// generates a share id from the current time plus a random base36 suffix.
// Uniqueness is best-effort: the millisecond component makes same-instant
// collisions the only risk and the random suffix makes those negligible.
func newShareID() (string, error) {
	suffix, err := randomBase36(shareIDRandomLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("share_%d_%s", time.Now().UnixMilli(), suffix), nil
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// returns n cryptographically random base36 characters
func randomBase36(n int) (string, error) {
	out := make([]byte, n)

	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			return "", err
		}

		out[i] = base36Alphabet[idx.Int64()]
	}

	return string(out), nil
}
