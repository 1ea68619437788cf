package handlers

import (
	"net/http"
	"strconv"

	"estateBack/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.URL.Query().Get(name)
}

// parsePage reads the page query parameter. Absent, zero, negative or
// non-numeric values all mean page 1; the service clamps again anyway.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// viewerFromContext rebuilds the resolved identity the auth middleware
// stashed on the request context. Anonymous requests yield a zero viewer.
func viewerFromContext(r *http.Request) models.Viewer {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		return models.Viewer{}
	}
	role, _ := r.Context().Value("role").(string)
	return models.Viewer{UserID: userID, Role: role, Authenticated: true}
}
