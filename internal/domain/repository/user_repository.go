package repository

import "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByVerifyOTP busca el usuario dueño de un código de verificación
	// pendiente. Devuelve nil si el código no existe o ya fue consumido.
	GetByVerifyOTP(otp string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
