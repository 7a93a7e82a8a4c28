// Package sync orchestrates push (local draft to server) and pull (server
// record to local draft). Both directions are whole-record overwrites: there
// is no field-level merge or conflict detection.
package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/client/api"
	"github.com/vaibhavharit14/BudgetBox/internal/client/store"
)

// ErrSessionExpired means the server rejected the bearer token. The caller
// is expected to clear the stored session and direct the user back to login;
// no automatic retry is performed.
var ErrSessionExpired = errors.New("session expired")

// ErrNoServerBudget means the server has no record yet for this user. The
// local draft is left untouched.
var ErrNoServerBudget = errors.New("no budget found on server")

// Flow reconciles the local draft store against the backend.
type Flow struct {
	api   *api.Client
	store *store.Store
}

func New(apiClient *api.Client, st *store.Store) *Flow {
	return &Flow{api: apiClient, store: st}
}

// Push sends the full current draft to the server. On success the draft is
// marked Synced with the sync timestamp recorded. Auth failures map to
// ErrSessionExpired; any other failure is surfaced verbatim and the sync
// status is left unchanged.
func (f *Flow) Push(ctx context.Context, token string) (*api.Budget, error) {
	d := f.store.State().Draft
	payload := api.BudgetPayload{
		Income:        d.Income,
		MonthlyBills:  d.MonthlyBills,
		Food:          d.Food,
		Transport:     d.Transport,
		Subscriptions: d.Subscriptions,
		Misc:          d.Misc,
		Description:   d.Description,
	}

	budget, err := f.api.SyncBudget(ctx, token, payload)
	if err != nil {
		return nil, classify(err)
	}

	if err := f.store.MarkSynced(ctx, time.Now()); err != nil {
		return nil, fmt.Errorf("record sync state: %w", err)
	}
	return budget, nil
}

// Pull fetches the server's latest record and overwrites the entire local
// draft with it (the server wins). A missing server record surfaces as
// ErrNoServerBudget without mutating the draft.
func (f *Flow) Pull(ctx context.Context, token string) (*api.Budget, error) {
	budget, err := f.api.LatestBudget(ctx, token)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, ErrNoServerBudget
		}
		return nil, classify(err)
	}

	d := store.Draft{
		Income:        budget.Income,
		MonthlyBills:  budget.MonthlyBills,
		Food:          budget.Food,
		Transport:     budget.Transport,
		Subscriptions: budget.Subscriptions,
		Misc:          budget.Misc,
		Description:   budget.Description,
	}
	if err := f.store.SetBudget(ctx, d); err != nil {
		return nil, fmt.Errorf("store pulled budget: %w", err)
	}
	if err := f.store.MarkSynced(ctx, time.Now()); err != nil {
		return nil, fmt.Errorf("record sync state: %w", err)
	}
	return budget, nil
}

// classify maps auth failures to ErrSessionExpired and passes everything
// else through unchanged.
func classify(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.IsAuth() {
		return ErrSessionExpired
	}
	return err
}
