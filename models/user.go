package models

import "time"

// User represents a platform account. Customers and photographers share the
// same account record; photographer capability comes from owning a
// Photographer profile.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Username         string    `bson:"username" json:"username"`
	FullName         string    `bson:"fullName" json:"fullName"`
	Email            string    `bson:"email" json:"email"`
	PhoneNumber      string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Avatar           string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	RefreshTokenHash string    `bson:"refreshTokenHash,omitempty" json:"-"`
	Role             string    `bson:"role" json:"role"` // "user" or "admin"
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the public slice of a user joined into other payloads.
type UserSummary struct {
	ID          string `bson:"id" json:"id"`
	FullName    string `bson:"fullName" json:"fullName"`
	Avatar      string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
}

// Summary projects the public fields of a user.
func (u *User) Summary(includeContact bool) UserSummary {
	s := UserSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
	if includeContact {
		s.Email = u.Email
		s.PhoneNumber = u.PhoneNumber
	}
	return s
}
