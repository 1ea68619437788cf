package models

import (
	"time"
)

type Property struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Location       string    `json:"location"`
	ImageURL       []string  `json:"imageUrl"`
	Status         string    `json:"status"`
	OwnerID        int       `json:"ownerId"`
	CreatedAt      time.Time `json:"createdAt"`
	FavoritesCount int       `json:"favoritesCount"`
	LikedByMe      bool      `json:"likedByMe"`
}

// UpdatePropertyRequest carries a partial field edit. Nil pointers mean
// "leave unchanged"; status is not part of a field edit and travels only
// through the updateStatus endpoint.
type UpdatePropertyRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	ImageURL    []string `json:"imageUrl"`
}

type PropertyListResponse struct {
	Data       []Property `json:"data"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	TotalItems int        `json:"totalItems"`
}

// PropertyScope is the visibility predicate a repository query runs under.
// A zero scope matches everything; None matches nothing and is the
// fail-closed answer for unrecognized roles.
type PropertyScope struct {
	OwnerID  *int
	Statuses []string
	None     bool
}

// Viewer is the resolved identity attached to a request by the auth
// middleware. Authenticated is false for anonymous callers, in which case
// UserID and Role are zero values.
type Viewer struct {
	UserID        int
	Role          string
	Authenticated bool
}
