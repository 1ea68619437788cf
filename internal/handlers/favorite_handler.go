package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

// ToggleFavorite flips the like state for the requesting user and reports
// the state after the toggle.
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	liked, err := h.Service.ToggleFavorite(r.Context(), viewerFromContext(r), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ToggleFavoriteResponse{Liked: liked})
}
