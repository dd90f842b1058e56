package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what an account is allowed to do
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// Level is the account tier, it determines default credit limits
type Level string

const (
	LevelSilver   Level = "SILVER"
	LevelGold     Level = "GOLD"
	LevelPlatinum Level = "PLATINUM"
)

// Account represents a registered bank customer or administrator
type Account struct {
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	CustomerName string    `db:"customer_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	PhoneNumber  string    `db:"phone_number"`
	Level        Level     `db:"level"`
	ID           uuid.UUID `db:"id"`
}

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	return r == RoleCustomer || r == RoleAdmin
}

// ValidLevel reports whether l is one of the known account tiers
func ValidLevel(l Level) bool {
	return l == LevelSilver || l == LevelGold || l == LevelPlatinum
}
