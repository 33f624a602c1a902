package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sproutworks/ecopods/internal/models"
)

type stubUserStore struct {
	byEmail        map[string]models.User
	byID           map[uint]models.User
	created        *models.User
	contactUpdated bool
}

func (stub *stubUserStore) FindByID(userID uint) (models.User, error) {
	user, found := stub.byID[userID]
	if !found {
		return models.User{}, errors.New("record not found")
	}
	return user, nil
}

func (stub *stubUserStore) FindByNormalizedEmail(email string) (models.User, bool, error) {
	user, found := stub.byEmail[email]
	return user, found, nil
}

func (stub *stubUserStore) Create(user *models.User) error {
	user.ID = 42
	stub.created = user
	return nil
}

func (stub *stubUserStore) UpdateContact(userID uint, name string, phone string, address string) error {
	stub.contactUpdated = true
	return nil
}

func TestAuthServiceSignInCreatesProfile(t *testing.T) {
	t.Parallel()

	store := &stubUserStore{byEmail: map[string]models.User{}}
	service := NewAuthService(store)
	service.now = func() time.Time { return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC) }

	user, err := service.SignIn(SignInInput{Name: "Asha", Email: "Asha@Example.com", Phone: "9102400000"})
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected created profile id, got %d", user.ID)
	}
	if user.Email != "asha@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Points != 0 {
		t.Fatalf("expected a fresh profile to start at zero points, got %d", user.Points)
	}
	if store.created == nil {
		t.Fatal("expected profile to be persisted")
	}
}

func TestAuthServiceSignInResumesProfile(t *testing.T) {
	t.Parallel()

	existing := models.User{ID: 7, Name: "Old Name", Email: "a@x.com", Points: 14}
	store := &stubUserStore{byEmail: map[string]models.User{"a@x.com": existing}}
	service := NewAuthService(store)

	user, err := service.SignIn(SignInInput{Name: "New Name", Email: "A@X.com", Address: "12 Green Lane"})
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected existing profile, got id %d", user.ID)
	}
	if user.Points != 14 {
		t.Fatalf("expected accumulated points to survive re-signin, got %d", user.Points)
	}
	if user.Name != "New Name" || user.Address != "12 Green Lane" {
		t.Fatalf("expected refreshed contact details, got %+v", user)
	}
	if !store.contactUpdated {
		t.Fatal("expected contact details to be persisted")
	}
	if store.created != nil {
		t.Fatal("expected no duplicate profile")
	}
}

func TestAuthServiceSignInRejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&stubUserStore{byEmail: map[string]models.User{}})
	if _, err := service.SignIn(SignInInput{Email: "not-an-email"}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}
}
