package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Username  string
	FirstName string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// DisplayName mirrors the storefront convention: first name when set,
// username otherwise.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
