package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

type Team struct {
	ID          int       `json:"id"`
	UUID        string    `json:"uuid"`
	TID         string    `json:"tid" gorm:"column:tid;uniqueIndex"`
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Members     []Member  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const teamIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTeamID returns a new public team identifier: "T" followed by the
// last 5 digits of the current unix time and 4 random uppercase alphanumeric
// characters. Team ids are generated once at creation and never change.
func GenerateTeamID() string {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	if len(ts) > 5 {
		ts = ts[len(ts)-5:]
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(teamIDChars))))
		if err != nil {
			// crypto/rand only fails if the platform source is broken.
			panic(err)
		}
		suffix[i] = teamIDChars[n.Int64()]
	}

	return "T" + ts + string(suffix)
}
