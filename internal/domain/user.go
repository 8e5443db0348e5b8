package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// emailValidator backs ValidateEmailFormat. A single instance is safe for
// concurrent use and caches struct metadata internally.
var emailValidator = validator.New()

// User represents a registered StarMatch user: their birth data, login
// credentials and friend list. Friends are referenced by email; the
// relation is symmetric, so adding A to B's list always adds B to A's.
type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	BirthDate  time.Time `json:"birth_date"`
	BirthTime  TimeOfDay `json:"birth_time"`
	BirthPlace string    `json:"birth_place"`
	Email      string    `json:"email"`
	Password   string    `json:"-"` // bcrypt hash, never exposed in JSON

	// FriendEmails holds the normalized emails of the user's friends.
	FriendEmails []string `json:"friend_emails"`
}

// NewUser creates a User from sign-up data. The password is stored as
// given; hashing is the service layer's responsibility.
// Returns a validation error if any field is invalid.
func NewUser(name string, birthDate time.Time, birthTime TimeOfDay, birthPlace, email, password string) (*User, error) {
	user := &User{
		Name:       name,
		BirthDate:  birthDate,
		BirthTime:  birthTime,
		BirthPlace: birthPlace,
		Email:      NormalizeEmail(email),
		Password:   password,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// GetID implements Entity.
func (u *User) GetID() int { return u.ID }

// SetID implements Entity.
func (u *User) SetID(id int) { u.ID = id }

// Validate checks the user's fields.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !ValidateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	if u.BirthDate.IsZero() {
		return ErrZeroBirthDate
	}
	if !u.BirthTime.IsValid() {
		return ErrInvalidTimeOfDay
	}
	return nil
}

// HasFriend reports whether email is in the user's friend list.
// Comparison is case-insensitive.
func (u *User) HasFriend(email string) bool {
	return slices.Contains(u.FriendEmails, NormalizeEmail(email))
}

// AddFriendEmail appends email to the friend list if not already present.
func (u *User) AddFriendEmail(email string) {
	email = NormalizeEmail(email)
	if !slices.Contains(u.FriendEmails, email) {
		u.FriendEmails = append(u.FriendEmails, email)
	}
}

// RemoveFriendEmail deletes email from the friend list. Removing an email
// that is not present is a no-op.
func (u *User) RemoveFriendEmail(email string) {
	email = NormalizeEmail(email)
	u.FriendEmails = slices.DeleteFunc(u.FriendEmails, func(e string) bool {
		return e == email
	})
}

// NormalizeEmail lowercases an email address so lookups and friend-list
// membership are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmailFormat reports whether the email looks deliverable.
// On top of the library's RFC-style check it requires a dot in the domain
// part, so bare hostnames like "user@com" are rejected.
func ValidateEmailFormat(email string) bool {
	if emailValidator.Var(email, "required,email") != nil {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
