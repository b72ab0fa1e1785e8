package authapimodels

import (
	"github.com/pkg/errors"

	"inspection-tools-backend/models"
)

type RegisterData struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r RegisterData) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" || r.Role == "" {
		return errors.New("missing fields")
	}
	if !r.Role.IsValid() {
		return errors.Errorf("unknown role: %s", r.Role)
	}
	return nil
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"token"`
}

type UserView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	RoleName string          `json:"role_name"`
}
