package services

import (
	"time"

	"github.com/sproutworks/ecopods/internal/models"
)

type UserStore interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	Create(user *models.User) error
	UpdateContact(userID uint, name string, phone string, address string) error
}

type AuthService struct {
	users UserStore
	now   func() time.Time
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

// SignIn creates a profile the first time an email appears and refreshes
// the contact details on later sign-ins. Accumulated points survive
// re-signin; they start at zero only for a brand-new profile.
func (service *AuthService) SignIn(input SignInInput) (models.User, error) {
	normalized, err := NormalizeSignInInput(input)
	if err != nil {
		return models.User{}, err
	}

	user, found, err := service.users.FindByNormalizedEmail(normalized.Email)
	if err != nil {
		return models.User{}, err
	}

	if !found {
		user = models.User{
			Name:      normalized.Name,
			Email:     normalized.Email,
			Phone:     normalized.Phone,
			Address:   normalized.Address,
			Points:    0,
			CreatedAt: service.now(),
		}
		if err := service.users.Create(&user); err != nil {
			return models.User{}, err
		}
		return user, nil
	}

	if err := service.users.UpdateContact(user.ID, normalized.Name, normalized.Phone, normalized.Address); err != nil {
		return models.User{}, err
	}
	user.Name = normalized.Name
	user.Phone = normalized.Phone
	user.Address = normalized.Address
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
