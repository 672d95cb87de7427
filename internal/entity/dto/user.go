package dto

import (
	"herbal/internal/entity/common"
	"time"
)

// UserSummary is a lightweight user description returned to clients.
type UserSummary struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email,omitempty"`
	FirstName string      `json:"first_name,omitempty"`
	LastName  string      `json:"last_name,omitempty"`
	FullName  string      `json:"full_name"`
	Role      common.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	LastLogin *time.Time  `json:"last_login,omitempty"`
}

// UserQuery supports listing users with pagination.
type UserQuery struct {
	common.BaseParams
	Role    string `json:"role" form:"role" query:"role"`
	Keyword string `json:"keyword" form:"keyword" query:"keyword"`
}

// UserUpdateRequest is the admin payload for updating a user. Users are
// deactivated rather than deleted.
type UserUpdateRequest struct {
	Role      *string `json:"role,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=50"`
}

// UserListResponse is the response for listing users.
type UserListResponse struct {
	Users []UserSummary `json:"users"`
	Meta  *common.Meta  `json:"meta"`
}

// UserDashboard summarises the caller's own contributions.
type UserDashboard struct {
	PlantsAdded        int64          `json:"plants_added"`
	ApprovedPlants     int64          `json:"approved_plants"`
	PendingPlants      int64          `json:"pending_plants"`
	IdentificationsRun int64          `json:"identifications_made"`
	Plants             []PlantSummary `json:"plants"`
}
