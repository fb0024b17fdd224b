// Package authz holds the role and visibility rules shared by the project
// and application services. Admin-only endpoints are additionally gated by
// the admin middleware; these functions decide what an authenticated caller
// may see or do within an endpoint both roles can reach.
package authz

import "github.com/projectify/backend/internal/models"

// CanViewProject reports whether the caller may read a single project.
// Non-admins only see approved projects; an existing but non-approved
// project yields a forbidden response, not a 404.
func CanViewProject(role string, project *models.Project) bool {
	if role == models.RoleAdmin {
		return true
	}
	return project.Status == models.StatusApproved
}

// ProjectListFilter resolves the status filter for a project listing.
// Admins get the filter they asked for ("" or "all" means everything);
// everyone else is pinned to approved regardless of the query.
func ProjectListFilter(role, requested string) string {
	if role != models.RoleAdmin {
		return models.StatusApproved
	}
	if requested == "" || requested == "all" {
		return ""
	}
	return requested
}

// CanApply reports whether a project accepts new applications.
func CanApply(project *models.Project) bool {
	return project.Status == models.StatusApproved
}
