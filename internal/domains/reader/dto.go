package reader

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"personal-library-backend/internal/shared/repository"
)

// RegisterRequest - POST /api/v1/readers/register
type RegisterRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Preferences *string `json:"preferences,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

// Fields maps the request onto insert bindings. The password itself never
// reaches the store; the service swaps it for a bcrypt hash.
func (r RegisterRequest) Fields(passwordHash string) repository.Fields {
	f := repository.Fields{}.
		Append("first_name", r.FirstName).
		Append("last_name", r.LastName).
		Append("email", r.Email).
		Append("password_hash", passwordHash)
	if r.Preferences != nil {
		f = f.Append("preferences", *r.Preferences)
	}
	return f
}

// LoginRequest - POST /api/v1/readers/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateReaderRequest - PUT /api/v1/readers/:id (partial update)
type UpdateReaderRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	Preferences *string `json:"preferences,omitempty"`
}

func (r UpdateReaderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Length(1, 100)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Length(8, 72)),
	)
}

// Fields builds the update bindings. passwordHash is non-empty only when the
// request carried a new password.
func (r UpdateReaderRequest) Fields(passwordHash string) repository.Fields {
	f := repository.Fields{}
	if r.FirstName != nil {
		f = f.Append("first_name", *r.FirstName)
	}
	if r.LastName != nil {
		f = f.Append("last_name", *r.LastName)
	}
	if r.Email != nil {
		f = f.Append("email", *r.Email)
	}
	if passwordHash != "" {
		f = f.Append("password_hash", passwordHash)
	}
	if r.Preferences != nil {
		f = f.Append("preferences", *r.Preferences)
	}
	return f
}
