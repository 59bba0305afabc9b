package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artist is a storefront owner profile. Availability means open for
// commissions.
type Artist struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	Bio          string
	Availability bool
	Featured     bool
	Website      string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
