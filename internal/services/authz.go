package services

import (
	"estateBack/internal/models"
)

type operation string

const (
	opCreateProperty  operation = "property.create"
	opListAll         operation = "property.list_all"
	opListOwner       operation = "property.list_owner"
	opUpdateProperty  operation = "property.update"
	opUpdateStatus    operation = "property.update_status"
	opArchiveProperty operation = "property.archive"
	opToggleFavorite  operation = "favorite.toggle"
)

// allowedRoles is the single authorization table for the property surface.
// Ownership checks (owner may only touch their own rows) are separate and
// live with the operations themselves.
var allowedRoles = map[operation]map[string]struct{}{
	opCreateProperty:  {models.RoleOwner: {}, models.RoleAdmin: {}},
	opListAll:         {models.RoleAdmin: {}},
	opListOwner:       {models.RoleOwner: {}},
	opUpdateProperty:  {models.RoleOwner: {}},
	opUpdateStatus:    {models.RoleOwner: {}, models.RoleAdmin: {}},
	opArchiveProperty: {models.RoleOwner: {}, models.RoleAdmin: {}},
	opToggleFavorite:  {models.RoleUser: {}},
}

func canPerform(op operation, viewer models.Viewer) bool {
	if !viewer.Authenticated {
		return false
	}
	roles, ok := allowedRoles[op]
	if !ok {
		return false
	}
	_, ok = roles[viewer.Role]
	return ok
}
