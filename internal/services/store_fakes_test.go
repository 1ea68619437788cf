package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"estateBack/internal/models"
)

type favoriteKey struct {
	userID     int
	propertyID int
}

// memStore is an in-memory stand-in for the Postgres repositories. It
// enforces the same contracts the real ones do: missing rows map to
// models.ErrPropertyNotFound and a duplicate favorite insert maps to
// models.ErrFavoriteExists.
type memStore struct {
	mu         sync.Mutex
	nextID     int
	properties map[int]models.Property
	favorites  map[favoriteKey]struct{}
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     1,
		properties: make(map[int]models.Property),
		favorites:  make(map[favoriteKey]struct{}),
	}
}

func (m *memStore) CreateProperty(ctx context.Context, p models.Property) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	m.properties[p.ID] = p
	return p.ID, nil
}

func (m *memStore) GetPropertyByID(ctx context.Context, id, viewerID int) (models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.properties[id]
	if !ok {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return m.enrich(p, viewerID), nil
}

func (m *memStore) UpdatePropertyFields(ctx context.Context, p models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.properties[p.ID]
	if !ok {
		return models.ErrPropertyNotFound
	}
	stored.Title = p.Title
	stored.Description = p.Description
	stored.Price = p.Price
	stored.Location = p.Location
	stored.ImageURL = p.ImageURL
	m.properties[p.ID] = stored
	return nil
}

func (m *memStore) UpdatePropertyStatus(ctx context.Context, id int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.properties[id]
	if !ok {
		return models.ErrPropertyNotFound
	}
	p.Status = status
	m.properties[id] = p
	return nil
}

func (m *memStore) FindPage(ctx context.Context, scope models.PropertyScope, viewerID, limit, offset int) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := m.matching(scope)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]models.Property, 0, end-offset)
	for _, p := range matched[offset:end] {
		page = append(page, m.enrich(p, viewerID))
	}
	return page, nil
}

func (m *memStore) Count(ctx context.Context, scope models.PropertyScope) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.matching(scope)), nil
}

func (m *memStore) matching(scope models.PropertyScope) []models.Property {
	var matched []models.Property
	for _, p := range m.properties {
		if scope.None {
			continue
		}
		if scope.OwnerID != nil && p.OwnerID != *scope.OwnerID {
			continue
		}
		if len(scope.Statuses) > 0 {
			found := false
			for _, status := range scope.Statuses {
				if p.Status == status {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}

func (m *memStore) enrich(p models.Property, viewerID int) models.Property {
	count := 0
	for key := range m.favorites {
		if key.propertyID == p.ID {
			count++
		}
	}
	p.FavoritesCount = count
	_, liked := m.favorites[favoriteKey{userID: viewerID, propertyID: p.ID}]
	p.LikedByMe = liked
	return p
}

func (m *memStore) InsertFavorite(ctx context.Context, userID, propertyID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.properties[propertyID]; !ok {
		return models.ErrPropertyNotFound
	}
	key := favoriteKey{userID: userID, propertyID: propertyID}
	if _, ok := m.favorites[key]; ok {
		return models.ErrFavoriteExists
	}
	m.favorites[key] = struct{}{}
	return nil
}

func (m *memStore) DeleteFavorite(ctx context.Context, userID, propertyID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := favoriteKey{userID: userID, propertyID: propertyID}
	if _, ok := m.favorites[key]; !ok {
		return false, nil
	}
	delete(m.favorites, key)
	return true, nil
}

func (m *memStore) HasFavorite(ctx context.Context, userID, propertyID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.favorites[favoriteKey{userID: userID, propertyID: propertyID}]
	return ok, nil
}

func (m *memStore) favoriteCount(propertyID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for key := range m.favorites {
		if key.propertyID == propertyID {
			count++
		}
	}
	return count
}

// seedProperty inserts a row directly, bypassing the service, so tests can
// set arbitrary statuses and timestamps.
func (m *memStore) seedProperty(ownerID int, status string, createdAt time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.properties[id] = models.Property{
		ID:        id,
		Title:     "listing",
		Price:     100,
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
	}
	return id
}
