package domain

// Admin is an administrator account. Admins curate reference data (traits,
// quotes) and manage user accounts; they carry no birth data.
type Admin struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash
}

// NewAdmin creates an Admin, normalizing the email.
// Returns a validation error if any field is invalid.
func NewAdmin(name, email, password string) (*Admin, error) {
	admin := &Admin{
		Name:     name,
		Email:    NormalizeEmail(email),
		Password: password,
	}
	if err := admin.Validate(); err != nil {
		return nil, err
	}
	return admin, nil
}

// GetID implements Entity.
func (a *Admin) GetID() int { return a.ID }

// SetID implements Entity.
func (a *Admin) SetID(id int) { a.ID = id }

// Validate checks the admin's fields.
func (a *Admin) Validate() error {
	if a.Name == "" {
		return ErrEmptyName
	}
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if !ValidateEmailFormat(a.Email) {
		return ErrInvalidEmail
	}
	if a.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
