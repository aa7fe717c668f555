// Package permissions holds the static role table consulted before invoking
// façade operations. It is a UI-layer gate: façade operations themselves do
// not re-check permissions.
package permissions

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ecatuogno1/glassvision/internal/domain"
)

// Action enumerates the gated operations.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionPublish Action = "publish"
)

// Resource identifies a permission-gated entity kind. Content buckets use
// their bucket name; media, forms, and pages have dedicated resources.
type Resource string

const (
	ResourceProjects  Resource = Resource(domain.EntityProjects)
	ResourceServices  Resource = Resource(domain.EntityServices)
	ResourceBlog      Resource = Resource(domain.EntityBlog)
	ResourcePortfolio Resource = Resource(domain.EntityPortfolio)
	ResourceStaff     Resource = Resource(domain.EntityStaff)
	ResourceClients   Resource = Resource(domain.EntityClients)
	ResourceMedia     Resource = "media"
	ResourceForms     Resource = "forms"
	ResourcePages     Resource = "pages"
)

const (
	unknownResourceCode = "PERMISSIONS_UNKNOWN_RESOURCE"
	unknownActionCode   = "PERMISSIONS_UNKNOWN_ACTION"
)

// Grant lists the roles allowed to perform each action on a resource.
type Grant struct {
	Create  []domain.Role
	Update  []domain.Role
	Delete  []domain.Role
	Publish []domain.Role
}

// Table maps every gated resource to its grant.
type Table map[Resource]Grant

// Default returns the built-in permission table.
func Default() Table {
	adminOnly := []domain.Role{domain.RoleAdmin}
	adminEditor := []domain.Role{domain.RoleAdmin, domain.RoleEditor}
	adminEditorAuthor := []domain.Role{domain.RoleAdmin, domain.RoleEditor, domain.RoleAuthor}

	return Table{
		ResourceProjects: {
			Create:  adminEditor,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminEditor,
		},
		ResourceServices: {
			Create:  adminEditorAuthor,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminEditor,
		},
		ResourceBlog: {
			Create:  adminEditorAuthor,
			Update:  adminEditorAuthor,
			Delete:  adminEditor,
			Publish: adminEditor,
		},
		ResourcePortfolio: {
			Create:  adminEditor,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminEditor,
		},
		ResourceStaff: {
			Create:  adminEditor,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminEditor,
		},
		ResourceClients: {
			Create:  adminOnly,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminOnly,
		},
		ResourceMedia: {
			Create:  adminEditorAuthor,
			Update:  adminEditor,
			Delete:  adminEditor,
			Publish: adminOnly,
		},
		ResourceForms: {
			Create:  adminEditor,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminEditor,
		},
		ResourcePages: {
			Create:  adminEditor,
			Update:  adminEditor,
			Delete:  adminOnly,
			Publish: adminEditor,
		},
	}
}

// CanPerform reports whether role may perform action on resource. Unknown
// resources and actions are caller contract violations and return a
// validation-category error rather than silently defaulting either way.
func (t Table) CanPerform(resource Resource, role domain.Role, action Action) (bool, error) {
	grant, ok := t[resource]
	if !ok {
		return false, goerrors.Wrap(
			fmt.Errorf("permissions: unknown resource %q", resource),
			goerrors.CategoryValidation, "permission lookup failed",
		).WithTextCode(unknownResourceCode)
	}

	var roles []domain.Role
	switch action {
	case ActionCreate:
		roles = grant.Create
	case ActionUpdate:
		roles = grant.Update
	case ActionDelete:
		roles = grant.Delete
	case ActionPublish:
		roles = grant.Publish
	default:
		return false, goerrors.Wrap(
			fmt.Errorf("permissions: unknown action %q", action),
			goerrors.CategoryValidation, "permission lookup failed",
		).WithTextCode(unknownActionCode)
	}

	for _, allowed := range roles {
		if allowed == role {
			return true, nil
		}
	}
	return false, nil
}

// MustCan is CanPerform for call sites that treat an unknown resource or
// action as a programming error. It panics on lookup failure.
func (t Table) MustCan(resource Resource, role domain.Role, action Action) bool {
	allowed, err := t.CanPerform(resource, role, action)
	if err != nil {
		panic(err)
	}
	return allowed
}

// RoleFromActor classifies an actor identifier into a role using ordered
// substring rules: the organizational domain suffix wins, then "design"
// implies editor, then "studio" or "creative" implies author, else viewer.
//
// This is a placeholder policy for demonstration data, not a security
// boundary. Swap it for a real claims lookup before gating anything that
// matters; the checker above is agnostic to how roles are derived.
func RoleFromActor(identifier string) domain.Role {
	actor := strings.TrimSpace(identifier)
	if actor == "" {
		return domain.RoleViewer
	}
	if strings.HasSuffix(actor, "@glassvision.dev") {
		return domain.RoleAdmin
	}
	if strings.Contains(actor, "design") {
		return domain.RoleEditor
	}
	if strings.Contains(actor, "studio") || strings.Contains(actor, "creative") {
		return domain.RoleAuthor
	}
	return domain.RoleViewer
}
