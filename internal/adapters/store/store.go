// Package store defines the read boundary against the app's document store.
//
// The engine never talks to the persistence backend directly; it consumes
// these interfaces, and the hosting app supplies an implementation backed
// by whatever document store it uses. Documents cross this boundary with
// timestamps already normalized to canonical epoch milliseconds (see
// NormalizeTimestamp), so the core never sniffs timestamp shapes.
package store

import (
	"context"

	"github.com/skinsight/engine/internal/domain/model"
)

// Profile is a stored user document reduced to the fields the engine reads.
type Profile struct {
	UserID     string
	Attributes model.UserAttributeProfile
	Allergies  []string
	UpdatedAt  int64 // epoch milliseconds
}

// SavedProduct is a product the user saved, with its ingredient payload
// ready for analysis.
type SavedProduct struct {
	ProductID   string
	Name        string
	ProductType string
	Ingredients []string
	SavedAt     int64 // epoch milliseconds
}

// ProfileSource reads user attribute profiles.
type ProfileSource interface {
	// Profile returns the stored profile for userID.
	// Returns ErrProfileNotFound if the user is unknown.
	Profile(ctx context.Context, userID string) (Profile, error)
}

// SavedProductSource reads a user's saved products.
type SavedProductSource interface {
	// SavedProducts returns the user's saved products in save order.
	SavedProducts(ctx context.Context, userID string) ([]SavedProduct, error)
}
