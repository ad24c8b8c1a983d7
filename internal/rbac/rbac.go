// Package rbac centralizes every permission decision in the console.
//
// Role checks used to drift when each page reimplemented them; here the
// predicates exist exactly once and both the list views and the detail
// views call the same functions.
package rbac

import (
	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/session"
)

// Decision is the outcome of a guard evaluation
type Decision int

const (
	// Allow renders the protected subtree
	Allow Decision = iota
	// RedirectLogin sends the user to sign-in (no session)
	RedirectLogin
	// RedirectDashboard silently downgrades to the landing page (wrong role)
	RedirectDashboard
)

// String returns a readable decision name
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// Capability allow-lists, one per protected surface
var (
	// ProductRegistration covers registering and editing products
	ProductRegistration = []domain.Role{domain.RoleAdmin, domain.RoleAnalyst}

	// ProductApproval covers the approval queue and status changes
	ProductApproval = []domain.Role{domain.RoleAdmin}

	// UserManagement covers listing, editing, and deleting users,
	// and registering new ones
	UserManagement = []domain.Role{domain.RoleAdmin}

	// ProductCatalog covers the approved product list and FDS viewing
	ProductCatalog = []domain.Role{domain.RoleAdmin, domain.RoleAnalyst, domain.RoleViewer}

	// DashboardStats covers the aggregated statistics endpoint
	DashboardStats = []domain.Role{domain.RoleAdmin, domain.RoleAnalyst}
)

// HasRole reports whether the user's role is in the allow-list.
// A nil user never has a role.
func HasRole(user *domain.User, allowed ...domain.Role) bool {
	if user == nil {
		return false
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}

// Decide evaluates the route and role guards for one protected surface.
//
// No session (token and user must both be present) redirects to
// sign-in. A session with a role outside the allow-list silently
// redirects to the landing page. An empty allow-list means any
// authenticated user may pass (route guard only).
func Decide(sess *session.Session, allowed ...domain.Role) Decision {
	if sess == nil || sess.Token == "" || sess.User.EffectiveID() == "" {
		return RedirectLogin
	}
	if len(allowed) == 0 {
		return Allow
	}
	if HasRole(&sess.User, allowed...) {
		return Allow
	}
	return RedirectDashboard
}

// CanEditProduct is the edit-permission rule, finer grained than the
// route-level role check: admins always may; analysts only for products
// they created that have not been approved yet.
//
// Evaluated by both the list action column and the edit page; keep it
// the single source of truth.
func CanEditProduct(user *domain.User, product *domain.Product) bool {
	if user == nil || product == nil {
		return false
	}
	if user.Role == domain.RoleAdmin {
		return true
	}
	if user.Role == domain.RoleAnalyst {
		return product.CreatedByUserID.String() != "" &&
			product.CreatedByUserID.String() == user.EffectiveID() &&
			product.Status != domain.StatusApproved
	}
	return false
}

// CanDeleteProduct reports whether the user may delete products
func CanDeleteProduct(user *domain.User) bool {
	return HasRole(user, domain.RoleAdmin)
}

// CanApproveProducts reports whether the user may work the approval queue
func CanApproveProducts(user *domain.User) bool {
	return HasRole(user, ProductApproval...)
}

// CanManageUsers reports whether the user may list, edit, delete,
// or register users
func CanManageUsers(user *domain.User) bool {
	return HasRole(user, UserManagement...)
}

// CanRegisterProducts reports whether the user may register new products
func CanRegisterProducts(user *domain.User) bool {
	return HasRole(user, ProductRegistration...)
}
