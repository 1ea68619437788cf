package models

import (
	"time"
)

// Favorite is one row of the engagement ledger. Its existence is the whole
// "liked" state: there is no boolean flag on the property itself, and the
// (user_id, property_id) pair is unique at the store level.
type Favorite struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	PropertyID int       `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ToggleFavoriteResponse struct {
	Liked bool `json:"liked"`
}
