package permissions_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/permissions"
)

func TestCanPerformGrants(t *testing.T) {
	table := permissions.Default()

	cases := []struct {
		resource permissions.Resource
		role     domain.Role
		action   permissions.Action
		want     bool
	}{
		{permissions.ResourceBlog, domain.RoleAdmin, permissions.ActionDelete, true},
		{permissions.ResourceBlog, domain.RoleAuthor, permissions.ActionCreate, true},
		{permissions.ResourceBlog, domain.RoleAuthor, permissions.ActionPublish, false},
		{permissions.ResourceBlog, domain.RoleViewer, permissions.ActionCreate, false},
		{permissions.ResourceForms, domain.RoleAuthor, permissions.ActionCreate, false},
		{permissions.ResourceMedia, domain.RoleAuthor, permissions.ActionCreate, true},
		{permissions.ResourcePages, domain.RoleEditor, permissions.ActionDelete, false},
		{permissions.ResourcePages, domain.RoleAdmin, permissions.ActionDelete, true},
	}
	for _, tc := range cases {
		got, err := table.CanPerform(tc.resource, tc.role, tc.action)
		if err != nil {
			t.Fatalf("CanPerform(%s, %s, %s): %v", tc.resource, tc.role, tc.action, err)
		}
		if got != tc.want {
			t.Errorf("CanPerform(%s, %s, %s) = %v, want %v", tc.resource, tc.role, tc.action, got, tc.want)
		}
	}
}

func TestCanPerformUnknownResource(t *testing.T) {
	table := permissions.Default()
	allowed, err := table.CanPerform("glass", domain.RoleAdmin, permissions.ActionCreate)
	if allowed {
		t.Fatal("unknown resource must not be allowed")
	}
	if err == nil {
		t.Fatal("expected an error for unknown resource")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestCanPerformUnknownAction(t *testing.T) {
	table := permissions.Default()
	allowed, err := table.CanPerform(permissions.ResourceBlog, domain.RoleAdmin, "transmogrify")
	if allowed {
		t.Fatal("unknown action must not be allowed")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestMustCanPanicsOnUnknownResource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	permissions.Default().MustCan("bogus", domain.RoleAdmin, permissions.ActionCreate)
}

func TestRoleFromActor(t *testing.T) {
	cases := []struct {
		actor string
		want  domain.Role
	}{
		{"lena@glassvision.dev", domain.RoleAdmin},
		{"design-team@agency.com", domain.RoleEditor},
		{"studio@partner.io", domain.RoleAuthor},
		{"creative.lead@partner.io", domain.RoleAuthor},
		{"guest@example.com", domain.RoleViewer},
		{"   ", domain.RoleViewer},
	}
	for _, tc := range cases {
		if got := permissions.RoleFromActor(tc.actor); got != tc.want {
			t.Errorf("RoleFromActor(%q) = %s, want %s", tc.actor, got, tc.want)
		}
	}
}
