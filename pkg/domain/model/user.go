package model

import (
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// User represents an account known to the risk register
type User struct {
	ID          types.UserID    `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        types.UserRole  `json:"role"`
	Department  string          `json:"department"`
	Preferences UserPreferences `json:"preferences"`
}

// UserPreferences holds per-user display and notification settings
type UserPreferences struct {
	Notifications   bool   `json:"notifications"`
	EmailAlerts     bool   `json:"emailAlerts"`
	DashboardLayout string `json:"dashboardLayout"`
}

// Clone returns a copy of the user
func (u *User) Clone() *User {
	copied := *u
	return &copied
}
