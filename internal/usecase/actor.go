package usecase

import "github.com/BruksfildServices01/salon-pos/internal/models"

// Actor is the authenticated caller as resolved by the auth middleware.
// SalonID scopes every query a use case runs on the caller's behalf.
type Actor struct {
	UserID  string
	SalonID string
	Role    string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role == models.RoleStaff || a.Role == models.RoleAdmin
}

// CanManageStaff reports whether the caller may edit data owned by staffID:
// admins for anyone in the salon, staff only for themselves.
func (a Actor) CanManageStaff(staffID string) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == models.RoleStaff && a.UserID == staffID
}
