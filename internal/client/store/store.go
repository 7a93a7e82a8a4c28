package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/client/storage"
)

// draftRecord is the record name the state is persisted under inside each
// identity partition.
const draftRecord = "draft"

// Store binds a State to the identity partition of a storage backend. Every
// mutation persists the new state into the active partition.
type Store struct {
	backend storage.Store
	state   State
}

// New returns a Store with empty default state. Call Hydrate to load the
// active identity's persisted draft.
func New(backend storage.Store) *Store {
	return &Store{backend: backend, state: EmptyState()}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return s.state
}

// Hydrate loads the persisted record for the current identity's partition,
// if one exists. Used once at startup.
func (s *Store) Hydrate(ctx context.Context) error {
	email := s.state.CurrentUserEmail
	loaded, ok, err := s.load(ctx, email)
	if err != nil {
		return err
	}
	if ok {
		loaded.CurrentUserEmail = email
		s.state = loaded
	}
	return nil
}

// SetField applies a single field edit and persists the result.
func (s *Store) SetField(ctx context.Context, name, value string) error {
	next, err := SetField(s.state, name, value, time.Now())
	if err != nil {
		return err
	}
	s.state = next
	return s.save(ctx)
}

// SetBudget replaces the whole draft and persists the result.
func (s *Store) SetBudget(ctx context.Context, d Draft) error {
	s.state = SetBudget(s.state, d, time.Now())
	return s.save(ctx)
}

// MarkSynced records a successful synchronization at ts and persists.
func (s *Store) MarkSynced(ctx context.Context, ts time.Time) error {
	s.state = MarkSynced(s.state, ts)
	return s.save(ctx)
}

// SwitchUser activates the partition for email. Switching to a different
// identity is two-phase: the in-memory state is reset to empty defaults
// first, and only then is the new identity's persisted record loaded. That
// ordering guarantees the previous user's figures are never visible under
// the new identity, even if the load fails. Switching to the empty email
// (logout) resets the draft and clears the active partition pointer.
func (s *Store) SwitchUser(ctx context.Context, email string) error {
	if s.state.CurrentUserEmail == email {
		return nil
	}

	s.state = EmptyState()
	s.state.CurrentUserEmail = email
	if email == "" {
		return nil
	}

	loaded, ok, err := s.load(ctx, email)
	if err != nil {
		return err
	}
	if ok {
		loaded.CurrentUserEmail = email
		s.state = loaded
	}
	return nil
}

func (s *Store) partition() string {
	return storage.PartitionForEmail(s.state.CurrentUserEmail)
}

func (s *Store) save(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal draft state: %w", err)
	}
	return s.backend.Put(ctx, s.partition(), draftRecord, data)
}

func (s *Store) load(ctx context.Context, email string) (State, bool, error) {
	data, err := s.backend.Get(ctx, storage.PartitionForEmail(email), draftRecord)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return State{}, false, nil
		}
		return State{}, false, err
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		// corrupt record, treat as absent
		return State{}, false, nil
	}
	return loaded, true, nil
}
