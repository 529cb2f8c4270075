package model

import "time"

// Member roles. Invitations can grant admin or member; owner is set when a
// team is created and is never granted through an invitation.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Member presence statuses.
const (
	StatusNone      = ""
	StatusMeeting   = "meeting"
	StatusCommuting = "commuting"
	StatusRemote    = "remote"
	StatusSick      = "sick"
	StatusLeave     = "leave"
)

// Member joins a User to a Team. A user holds at most one membership row per
// team, enforced by the unique index on (user_id, team_id).
type Member struct {
	ID                int     `json:"id"`
	UUID              string  `json:"uuid"`
	UserID            int     `json:"user_id" gorm:"uniqueIndex:idx_member_user_team"`
	User              *User   `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	TeamID            int     `json:"team_id" gorm:"uniqueIndex:idx_member_user_team"`
	Team              *Team   `json:"-" gorm:"foreignKey:TeamID;references:ID"`
	Role              string  `json:"role"`
	DisplayName       string  `json:"display_name"`
	Title             string  `json:"title"`
	PhoneNumber       *string `json:"phone_number" gorm:"uniqueIndex"`
	Online            bool    `json:"online"`
	Status            string  `json:"status"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// ValidRole reports whether role is one a membership row may carry. Roles are
// stored lowercase.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// ValidStatus reports whether status is one of the presence statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusNone, StatusMeeting, StatusCommuting, StatusRemote, StatusSick, StatusLeave:
		return true
	}
	return false
}
