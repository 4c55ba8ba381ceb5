//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"field-reservation/internal/domain/user"
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/config"
	"field-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token from a clock set far enough in the past
// that it is already expired against wall time.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := time.Now().Add(-2 * time.Hour)
	service := jwt.NewService(h.cfg.Secret, time.Hour, clock.NewMockClock(issuedAt))
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
