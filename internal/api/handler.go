package api

import (
	"time"

	"github.com/sproutworks/ecopods/internal/db"
	"github.com/sproutworks/ecopods/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	adminPINHash string

	repositories   *db.Repositories
	authService    *services.AuthService
	orderService   *services.OrderService
	paymentService *services.PaymentService
	pinLimiter     *attemptLimiter
}

const (
	sessionCookieName = "ecopods_session"
	adminCookieName   = "ecopods_admin"

	sessionTokenTTL = 7 * 24 * time.Hour
	adminTokenTTL   = 12 * time.Hour
)

const (
	pinAttemptLimit  = 5
	pinAttemptWindow = 10 * time.Minute
)

// NewHandler wires the HTTP surface. An empty adminPINHash falls back to
// the hashed demo PIN so the gate stays testable out of the box.
func NewHandler(database *gorm.DB, secretKey string, adminPINHash string, cookieSecure bool, paymentDelay time.Duration) (*Handler, error) {
	if adminPINHash == "" {
		hash, err := services.HashAdminPIN(services.DefaultAdminPIN)
		if err != nil {
			return nil, err
		}
		adminPINHash = hash
	}

	handler := &Handler{
		db:             database,
		secretKey:      []byte(secretKey),
		cookieSecure:   cookieSecure,
		adminPINHash:   adminPINHash,
		paymentService: services.NewPaymentService(paymentDelay),
		pinLimiter:     newAttemptLimiter(),
	}
	handler.ensureDependencies()
	return handler, nil
}
