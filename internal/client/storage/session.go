package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const sessionRecord = "auth"

// Session is the logged-in identity: the bearer token and the email it was
// issued for.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// LoadSession returns the persisted session, or a zero Session if none.
func LoadSession(ctx context.Context, s Store) (Session, error) {
	data, err := s.Get(ctx, SessionPartition, sessionRecord)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, nil
	}
	return sess, nil
}

// SaveSession persists the session.
func SaveSession(ctx context.Context, s Store, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.Put(ctx, SessionPartition, sessionRecord, data)
}

// ClearSession removes any persisted session.
func ClearSession(ctx context.Context, s Store) error {
	return s.Delete(ctx, SessionPartition, sessionRecord)
}
