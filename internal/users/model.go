package users

import "time"

// User is an authenticated account, keyed by its OAuth subject.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	GivenName  string    `json:"givenName"`
	FamilyName string    `json:"familyName"`
	PictureURL string    `json:"pictureUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DisplayName prefers the full name and falls back to the email.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
