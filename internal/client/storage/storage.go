// Package storage provides the client's partitioned key-value persistence.
// Each distinct identity maps to its own partition, so drafts can never leak
// across users sharing a device.
package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when no record exists under (partition, name).
var ErrNotFound = errors.New("storage: record not found")

// Store is a persistent key-value backend keyed by (partition, record name).
// Reads and writes are atomic for a single partition.
type Store interface {
	// Get returns the value stored under (partition, name), or ErrNotFound.
	Get(ctx context.Context, partition, name string) ([]byte, error)

	// Put stores value under (partition, name), overwriting any previous value.
	Put(ctx context.Context, partition, name string, value []byte) error

	// Delete removes the record under (partition, name). Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, partition, name string) error

	// Close releases the underlying resources.
	Close() error
}

// SessionPartition holds the logged-in identity (token, email). It sits
// outside the per-user budget regions so switching accounts never touches it.
const SessionPartition = "session"

// GuestPartition is the region used when no identity is active.
const GuestPartition = "budget-storage-guest"

// PartitionForEmail derives the storage partition for an identity. The
// derivation is deterministic: "@" and "." are replaced so the partition is a
// plain token, and an empty email maps to the guest region.
func PartitionForEmail(email string) string {
	if email == "" {
		return GuestPartition
	}
	safe := strings.NewReplacer("@", "-", ".", "-").Replace(email)
	return "budget-storage-" + safe
}
