package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPartitionForEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "budget-storage-guest"},
		{"a@b.com", "budget-storage-a-b-com"},
		{"first.last@mail.example.org", "budget-storage-first-last-mail-example-org"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PartitionForEmail(tt.email), tt.email)
	}
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.Get(ctx, "p1", "draft")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "p1", "draft", []byte(`{"a":1}`)))
	got, err := s.Get(ctx, "p1", "draft")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// overwrite
	require.NoError(t, s.Put(ctx, "p1", "draft", []byte(`{"a":2}`)))
	got, err = s.Get(ctx, "p1", "draft")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, s.Delete(ctx, "p1", "draft"))
	_, err = s.Get(ctx, "p1", "draft")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing record is not an error
	require.NoError(t, s.Delete(ctx, "p1", "draft"))
}

func TestPartitionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Put(ctx, PartitionForEmail("a@x.com"), "draft", []byte("alice")))
	require.NoError(t, s.Put(ctx, PartitionForEmail("b@x.com"), "draft", []byte("bob")))

	got, err := s.Get(ctx, PartitionForEmail("a@x.com"), "draft")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice"), got)

	got, err = s.Get(ctx, PartitionForEmail("b@x.com"), "draft")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob"), got)

	require.NoError(t, s.Delete(ctx, PartitionForEmail("a@x.com"), "draft"))
	_, err = s.Get(ctx, PartitionForEmail("b@x.com"), "draft")
	assert.NoError(t, err, "deleting one partition must not touch another")
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	sess, err := LoadSession(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, sess)

	require.NoError(t, SaveSession(ctx, s, Session{Token: "tok", Email: "a@b.com"}))
	sess, err = LoadSession(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, Session{Token: "tok", Email: "a@b.com"}, sess)

	require.NoError(t, ClearSession(ctx, s))
	sess, err = LoadSession(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, sess)
}
