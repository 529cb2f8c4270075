package model

import "time"

type User struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
