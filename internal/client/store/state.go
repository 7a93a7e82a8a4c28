// Package store holds the client's in-progress budget draft: an explicit
// state container with pure transition functions, persisted per identity
// through the partitioned storage backend.
package store

import (
	"fmt"
	"time"
)

// Draft mirrors the seven budget fields as plain strings. Values are not
// validated as numbers here; analytics parses them defensively.
type Draft struct {
	Income        string `json:"income"`
	MonthlyBills  string `json:"monthly_bills"`
	Food          string `json:"food"`
	Transport     string `json:"transport"`
	Subscriptions string `json:"subscriptions"`
	Misc          string `json:"misc"`
	Description   string `json:"description"`
}

// FieldNames lists the draft fields in canonical wire order.
var FieldNames = []string{
	"income",
	"monthly_bills",
	"food",
	"transport",
	"subscriptions",
	"misc",
	"description",
}

// Field returns the value of the named field.
func (d Draft) Field(name string) (string, bool) {
	switch name {
	case "income":
		return d.Income, true
	case "monthly_bills":
		return d.MonthlyBills, true
	case "food":
		return d.Food, true
	case "transport":
		return d.Transport, true
	case "subscriptions":
		return d.Subscriptions, true
	case "misc":
		return d.Misc, true
	case "description":
		return d.Description, true
	}
	return "", false
}

func (d *Draft) setField(name, value string) error {
	switch name {
	case "income":
		d.Income = value
	case "monthly_bills":
		d.MonthlyBills = value
	case "food":
		d.Food = value
	case "transport":
		d.Transport = value
	case "subscriptions":
		d.Subscriptions = value
	case "misc":
		d.Misc = value
	case "description":
		d.Description = value
	default:
		return fmt.Errorf("unknown budget field %q", name)
	}
	return nil
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// SyncStatus describes draft-vs-server freshness.
type SyncStatus string

const (
	// StatusLocalOnly means the draft has never been synchronized.
	StatusLocalOnly SyncStatus = "LocalOnly"
	// StatusSyncPending means local edits are newer than the last sync.
	StatusSyncPending SyncStatus = "SyncPending"
	// StatusSynced means the draft matches the server as of LastServerSyncAt.
	StatusSynced SyncStatus = "Synced"
)

// State is the full client draft state for one identity.
type State struct {
	Draft            Draft      `json:"budget"`
	LastLocalEditAt  *time.Time `json:"last_local_edit_at"`
	LastServerSyncAt *time.Time `json:"last_server_sync_at"`
	SyncStatus       SyncStatus `json:"sync_status"`
	CurrentUserEmail string     `json:"current_user_email"`
}

// EmptyState returns the default state: blank draft, LocalOnly, no timestamps.
func EmptyState() State {
	return State{SyncStatus: StatusLocalOnly}
}

// SetField returns s with the named field updated. The edit stamps
// LastLocalEditAt and forces SyncPending whenever no server sync has happened
// yet, or the previous local edit was already newer than the last sync.
func SetField(s State, name, value string, now time.Time) (State, error) {
	if err := s.Draft.setField(name, value); err != nil {
		return s, err
	}
	if s.LastServerSyncAt == nil ||
		(s.LastLocalEditAt != nil && s.LastLocalEditAt.After(*s.LastServerSyncAt)) {
		s.SyncStatus = StatusSyncPending
	}
	s.LastLocalEditAt = &now
	return s, nil
}

// SetBudget returns s with the whole draft replaced and the edit stamped.
// The sync status is left untouched; callers following a server pull chain
// this with MarkSynced.
func SetBudget(s State, d Draft, now time.Time) State {
	s.Draft = d
	s.LastLocalEditAt = &now
	return s
}

// MarkSynced returns s recorded as synchronized at ts.
func MarkSynced(s State, ts time.Time) State {
	s.LastServerSyncAt = &ts
	s.SyncStatus = StatusSynced
	return s
}
