// Package cli implements the budgetbox command-line client: local draft
// editing, server synchronization, analytics and export.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaibhavharit14/BudgetBox/internal/client/api"
	"github.com/vaibhavharit14/BudgetBox/internal/client/config"
	"github.com/vaibhavharit14/BudgetBox/internal/client/storage"
	"github.com/vaibhavharit14/BudgetBox/internal/client/store"
	syncflow "github.com/vaibhavharit14/BudgetBox/internal/client/sync"
)

// App wires the client pieces together for one command invocation.
type App struct {
	Config  config.Config
	Backend *storage.SQLiteStore
	Store   *store.Store
	API     *api.Client
	Session storage.Session
}

// newApp loads config, opens the local store and hydrates the active
// identity's draft.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagServer != "" {
		cfg.Server.BaseURL = flagServer
	}

	backend, err := storage.OpenInDir(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	session, err := storage.LoadSession(ctx, backend)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	st := store.New(backend)
	if session.Email != "" {
		err = st.SwitchUser(ctx, session.Email)
	} else {
		// a same-identity switch is a no-op, so the guest draft is
		// hydrated explicitly
		err = st.Hydrate(ctx)
	}
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	return &App{
		Config:  cfg,
		Backend: backend,
		Store:   st,
		API:     api.New(cfg.Server.BaseURL),
		Session: session,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.Backend.Close()
}

// RequireToken returns the stored bearer token, or an error telling the user
// to log in.
func (a *App) RequireToken() (string, error) {
	if a.Session.Token == "" {
		return "", errors.New("please login first (budgetbox login)")
	}
	return a.Session.Token, nil
}

// ExpireSession clears the stored session after the server rejected the
// token. The draft itself stays put; only the identity pointer is dropped.
func (a *App) ExpireSession(ctx context.Context) error {
	a.Session = storage.Session{}
	if err := storage.ClearSession(ctx, a.Backend); err != nil {
		return err
	}
	return a.Store.SwitchUser(ctx, "")
}

// handleSyncErr converts flow errors into user-facing messages, clearing the
// session on auth expiry. This is a UX contract: there is no automatic retry.
func (a *App) handleSyncErr(ctx context.Context, err error) error {
	if errors.Is(err, syncflow.ErrSessionExpired) {
		if cerr := a.ExpireSession(ctx); cerr != nil {
			return cerr
		}
		return errors.New("session expired. Please login again")
	}
	if errors.Is(err, syncflow.ErrNoServerBudget) {
		return fmt.Errorf("no budget found on the server yet; push your draft first")
	}
	return err
}
