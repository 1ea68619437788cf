package services

import (
	"context"
	"time"

	"estateBack/internal/fsm"
	"estateBack/internal/models"
)

// pageSize is fixed; callers only choose the page number.
const pageSize = 20

// PropertyStore is the repository surface the lifecycle service depends
// on. FindPage and Count must evaluate the same scope so totals and page
// contents never disagree.
type PropertyStore interface {
	CreateProperty(ctx context.Context, p models.Property) (int, error)
	GetPropertyByID(ctx context.Context, id, viewerID int) (models.Property, error)
	UpdatePropertyFields(ctx context.Context, p models.Property) error
	UpdatePropertyStatus(ctx context.Context, id int, status string) error
	FindPage(ctx context.Context, scope models.PropertyScope, viewerID, limit, offset int) ([]models.Property, error)
	Count(ctx context.Context, scope models.PropertyScope) (int, error)
}

type PropertyService struct {
	PropertyRepo PropertyStore
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// listPage is the pagination engine shared by the three read entry points.
// A page beyond the last one is not an error; it returns empty data with
// correct metadata.
func (s *PropertyService) listPage(ctx context.Context, scope models.PropertyScope, viewer models.Viewer, page int) (models.PropertyListResponse, error) {
	page = clampPage(page)

	total, err := s.PropertyRepo.Count(ctx, scope)
	if err != nil {
		return models.PropertyListResponse{}, err
	}
	properties, err := s.PropertyRepo.FindPage(ctx, scope, viewer.UserID, pageSize, (page-1)*pageSize)
	if err != nil {
		return models.PropertyListResponse{}, err
	}
	if properties == nil {
		properties = []models.Property{}
	}

	return models.PropertyListResponse{
		Data:       properties,
		Page:       page,
		TotalPages: (total + pageSize - 1) / pageSize,
		TotalItems: total,
	}, nil
}

// CreateProperty persists a new listing in draft status and re-reads it so
// the creation response carries the same enriched shape as list responses.
func (s *PropertyService) CreateProperty(ctx context.Context, viewer models.Viewer, p models.Property) (models.Property, error) {
	if !canPerform(opCreateProperty, viewer) {
		return models.Property{}, models.ErrPermissionDenied
	}
	if p.Price <= 0 {
		return models.Property{}, models.ErrInvalidPrice
	}

	p.OwnerID = viewer.UserID
	p.Status = fsm.StatusDraft
	p.CreatedAt = time.Now()

	id, err := s.PropertyRepo.CreateProperty(ctx, p)
	if err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
}

func (s *PropertyService) ListAllProperties(ctx context.Context, viewer models.Viewer, page int) (models.PropertyListResponse, error) {
	if !canPerform(opListAll, viewer) {
		return models.PropertyListResponse{}, models.ErrPermissionDenied
	}
	return s.listPage(ctx, ScopeFor(viewer), viewer, page)
}

func (s *PropertyService) ListOwnerProperties(ctx context.Context, viewer models.Viewer, page int) (models.PropertyListResponse, error) {
	if !canPerform(opListOwner, viewer) {
		return models.PropertyListResponse{}, models.ErrPermissionDenied
	}
	return s.listPage(ctx, ScopeFor(viewer), viewer, page)
}

// ListPublishedProperties is the public feed: published listings only, for
// every caller including anonymous ones. likedByMe is computed relative to
// the viewer and stays false when unauthenticated.
func (s *PropertyService) ListPublishedProperties(ctx context.Context, viewer models.Viewer, page int) (models.PropertyListResponse, error) {
	return s.listPage(ctx, publishedScope(), viewer, page)
}

// UpdateProperty applies a partial field edit. Only the owning owner may
// edit, and archived listings are immutable.
func (s *PropertyService) UpdateProperty(ctx context.Context, viewer models.Viewer, id int, req models.UpdatePropertyRequest) (models.Property, error) {
	if !canPerform(opUpdateProperty, viewer) {
		return models.Property{}, models.ErrPermissionDenied
	}

	current, err := s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
	if err != nil {
		return models.Property{}, err
	}
	if current.OwnerID != viewer.UserID {
		return models.Property{}, models.ErrPermissionDenied
	}
	if current.Status == fsm.StatusArchived {
		return models.Property{}, models.ErrPropertyArchived
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return models.Property{}, models.ErrInvalidPrice
		}
		current.Price = *req.Price
	}
	if req.Location != nil {
		current.Location = *req.Location
	}
	if req.ImageURL != nil {
		current.ImageURL = req.ImageURL
	}

	if err := s.PropertyRepo.UpdatePropertyFields(ctx, current); err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
}

// UpdatePropertyStatus runs a lifecycle transition after the state machine
// validates it. The owning owner or any admin may trigger transitions.
func (s *PropertyService) UpdatePropertyStatus(ctx context.Context, viewer models.Viewer, id int, status string) (models.Property, error) {
	if !canPerform(opUpdateStatus, viewer) {
		return models.Property{}, models.ErrPermissionDenied
	}

	current, err := s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
	if err != nil {
		return models.Property{}, err
	}
	if viewer.Role != models.RoleAdmin && current.OwnerID != viewer.UserID {
		return models.Property{}, models.ErrPermissionDenied
	}

	if err := fsm.Validate(current.Status, status); err != nil {
		return models.Property{}, err
	}
	if status != current.Status {
		if err := s.PropertyRepo.UpdatePropertyStatus(ctx, id, status); err != nil {
			return models.Property{}, err
		}
	}
	return s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
}

// RemoveProperty soft-deletes a listing by archiving it. Removing an
// already archived listing is a no-op success returning the same state.
func (s *PropertyService) RemoveProperty(ctx context.Context, viewer models.Viewer, id int) (models.Property, error) {
	if !canPerform(opArchiveProperty, viewer) {
		return models.Property{}, models.ErrPermissionDenied
	}

	current, err := s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
	if err != nil {
		return models.Property{}, err
	}
	if viewer.Role != models.RoleAdmin && current.OwnerID != viewer.UserID {
		return models.Property{}, models.ErrPermissionDenied
	}

	if current.Status == fsm.StatusArchived {
		return current, nil
	}
	if err := s.PropertyRepo.UpdatePropertyStatus(ctx, id, fsm.StatusArchived); err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.GetPropertyByID(ctx, id, viewer.UserID)
}
