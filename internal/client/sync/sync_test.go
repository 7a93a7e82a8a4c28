package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vaibhavharit14/BudgetBox/internal/client/api"
	"github.com/vaibhavharit14/BudgetBox/internal/client/storage"
	"github.com/vaibhavharit14/BudgetBox/internal/client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	backend, err := storage.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	s := store.New(backend)
	require.NoError(t, s.SwitchUser(context.Background(), "a@x.com"))
	return s
}

func TestPushSuccessMarksSynced(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	require.NoError(t, st.SetField(ctx, "income", "5000"))

	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/budget/sync", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Budget synced successfully",
			"budget":  map[string]string{"id": "b1", "income": "5000"},
		})
	}))
	defer srv.Close()

	flow := New(api.New(srv.URL), st)
	budget, err := flow.Push(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "b1", budget.ID)
	assert.Equal(t, "5000", received["income"])
	assert.Contains(t, received, "monthly_bills", "the whole draft is pushed, blanks included")

	state := st.State()
	assert.Equal(t, store.StatusSynced, state.SyncStatus)
	assert.NotNil(t, state.LastServerSyncAt)
}

func TestPushAuthFailure(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	require.NoError(t, st.SetField(ctx, "income", "5000"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false, "code": api.CodeAuth, "message": "Invalid token",
		})
	}))
	defer srv.Close()

	flow := New(api.New(srv.URL), st)
	_, err := flow.Push(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionExpired)

	assert.Equal(t, store.StatusSyncPending, st.State().SyncStatus,
		"a failed push leaves the sync status unchanged")
}

func TestPushServerErrorSurfacedVerbatim(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	require.NoError(t, st.SetField(ctx, "income", "5000"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false, "code": api.CodeConflict,
			"message": "Budget already exists for this user. Please update instead.",
		})
	}))
	defer srv.Close()

	flow := New(api.New(srv.URL), st)
	_, err := flow.Push(ctx, "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Contains(t, err.Error(), "Budget already exists for this user")
	assert.Equal(t, store.StatusSyncPending, st.State().SyncStatus)
}

func TestPullOverwritesDraft(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	require.NoError(t, st.SetField(ctx, "income", "1"))
	require.NoError(t, st.SetField(ctx, "description", "stale local text"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/budget/latest", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"budget": map[string]string{
				"id": "b1", "income": "9000", "monthly_bills": "2000",
			},
		})
	}))
	defer srv.Close()

	flow := New(api.New(srv.URL), st)
	_, err := flow.Pull(ctx, "tok")
	require.NoError(t, err)

	state := st.State()
	assert.Equal(t, "9000", state.Draft.Income)
	assert.Equal(t, "2000", state.Draft.MonthlyBills)
	assert.Empty(t, state.Draft.Description, "pull overwrites the whole draft, blanks included")
	assert.Equal(t, store.StatusSynced, state.SyncStatus)
}

func TestPullNotFoundLeavesDraftUntouched(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	require.NoError(t, st.SetField(ctx, "income", "5000"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false, "code": api.CodeNotFound, "message": "No budget found",
		})
	}))
	defer srv.Close()

	flow := New(api.New(srv.URL), st)
	_, err := flow.Pull(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoServerBudget)
	assert.Equal(t, "5000", st.State().Draft.Income)
	assert.Equal(t, store.StatusSyncPending, st.State().SyncStatus)
}

func TestPullAuthFailure(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false, "code": api.CodeAuth, "message": "Access denied. No token provided.",
		})
	}))
	defer srv.Close()

	flow := New(api.New(srv.URL), st)
	_, err := flow.Pull(ctx, "")
	assert.ErrorIs(t, err, ErrSessionExpired)
}
