package handlers

import (
	"errors"
	"log"
	"net/http"

	"estateBack/internal/fsm"
	"estateBack/internal/models"
)

// writeServiceError translates service-level errors into the HTTP error
// taxonomy. Raw storage errors never reach here; the repositories already
// converted constraint violations into model errors.
func writeServiceError(w http.ResponseWriter, err error) {
	var transitionErr *fsm.TransitionError
	switch {
	case errors.Is(err, models.ErrPropertyNotFound):
		http.Error(w, "Property not found", http.StatusNotFound)
	case errors.Is(err, models.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, models.ErrPermissionDenied):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrPropertyArchived):
		http.Error(w, "Archived property cannot be edited", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidPrice):
		http.Error(w, "Price must be a positive number", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidRole):
		http.Error(w, "Role must be user, owner or admin", http.StatusBadRequest)
	case errors.Is(err, models.ErrDuplicateEmail):
		http.Error(w, "User with that email already exists", http.StatusConflict)
	case errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	case errors.As(err, &transitionErr):
		http.Error(w, transitionErr.Error(), http.StatusBadRequest)
	default:
		log.Printf("service error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
