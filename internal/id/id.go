// Package id generates identifiers for ledger entities.
package id

import "github.com/google/uuid"

// New returns a random unique identifier. Entities keep their id for
// life; a deleted-then-restored transaction gets a fresh one.
func New() string {
	return uuid.NewString()
}
