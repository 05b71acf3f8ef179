// FILE: internal/entity/user_entity.go
package entity

import "time"

type User struct {
	Id           uint
	Email        string
	PasswordHash string
	Name         string
	Pronoun      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayPronoun returns the pronoun or an empty string when none was set.
func (u *User) DisplayPronoun() string {
	if u.Pronoun == nil {
		return ""
	}
	return *u.Pronoun
}
