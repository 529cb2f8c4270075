package model

import "time"

// Profile holds a user's account-wide settings, as opposed to the per-team
// fields carried on Member.
type Profile struct {
	ID          int     `json:"id"`
	UUID        string  `json:"uuid"`
	UserID      int     `json:"user_id" gorm:"uniqueIndex"`
	User        *User   `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	DisplayName string  `json:"display_name"`
	Title       string  `json:"title"`
	PhoneNumber *string `json:"phone_number" gorm:"uniqueIndex"`
	Online      bool    `json:"online"`
	Status      string  `json:"status"`
	Timezone    string  `json:"timezone"`
	DarkMode    bool    `json:"dark_mode"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
