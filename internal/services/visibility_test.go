package services

import (
	"testing"

	"estateBack/internal/fsm"
	"estateBack/internal/models"
)

func TestScopeForAnonymousSeesPublishedOnly(t *testing.T) {
	scope := ScopeFor(models.Viewer{})
	if scope.None || scope.OwnerID != nil {
		t.Fatalf("anonymous scope must be status-only; got %+v", scope)
	}
	if len(scope.Statuses) != 1 || scope.Statuses[0] != fsm.StatusPublished {
		t.Fatalf("anonymous scope must cover published only; got %v", scope.Statuses)
	}
}

func TestScopeForUserSeesPublishedOnly(t *testing.T) {
	scope := ScopeFor(userViewer(2))
	if len(scope.Statuses) != 1 || scope.Statuses[0] != fsm.StatusPublished {
		t.Fatalf("user scope must cover published only; got %v", scope.Statuses)
	}
}

func TestScopeForOwnerCoversOwnRowsInAnyStatus(t *testing.T) {
	scope := ScopeFor(ownerViewer(7))
	if scope.OwnerID == nil || *scope.OwnerID != 7 {
		t.Fatalf("owner scope must pin the owner id; got %+v", scope)
	}
	if len(scope.Statuses) != 0 {
		t.Fatalf("owner scope must not restrict status; got %v", scope.Statuses)
	}
}

func TestScopeForAdminIsUnrestricted(t *testing.T) {
	scope := ScopeFor(adminViewer(1))
	if scope.None || scope.OwnerID != nil || len(scope.Statuses) != 0 {
		t.Fatalf("admin scope must be unrestricted; got %+v", scope)
	}
}

func TestScopeForUnknownRoleFailsClosed(t *testing.T) {
	scope := ScopeFor(models.Viewer{UserID: 3, Role: "superuser", Authenticated: true})
	if !scope.None {
		t.Fatalf("unknown role must match nothing; got %+v", scope)
	}
}
