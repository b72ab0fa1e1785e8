package dbmodels

import (
	"inspection-tools-backend/models"
	authapimodels "inspection-tools-backend/models/api/auth"
)

type User struct {
	BaseModel
	Name         string          `gorm:"type:varchar(150)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(128)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
	Cycles       []Cycle         `gorm:"foreignKey:TechnicianID"`
	TimeLogs     []TimeLog       `gorm:"foreignKey:TechnicianID"`
}

// ToModel strips the credential hash from the outward view.
func (r User) ToModel() authapimodels.UserView {
	return authapimodels.UserView{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		RoleName: r.Role.ToHuman(),
	}
}
