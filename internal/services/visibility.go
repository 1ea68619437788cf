package services

import (
	"estateBack/internal/fsm"
	"estateBack/internal/models"
)

// ScopeFor produces the visibility predicate for a viewer. Admins see
// everything, owners see their own rows in any status, users and anonymous
// callers see published listings only. An unrecognized role fails closed:
// the returned scope matches nothing, never everything.
func ScopeFor(viewer models.Viewer) models.PropertyScope {
	if !viewer.Authenticated {
		return publishedScope()
	}
	switch viewer.Role {
	case models.RoleAdmin:
		return models.PropertyScope{}
	case models.RoleOwner:
		ownerID := viewer.UserID
		return models.PropertyScope{OwnerID: &ownerID}
	case models.RoleUser:
		return publishedScope()
	default:
		return models.PropertyScope{None: true}
	}
}

// publishedScope is the predicate of the public feed, regardless of who is
// asking.
func publishedScope() models.PropertyScope {
	return models.PropertyScope{Statuses: []string{fsm.StatusPublished}}
}
