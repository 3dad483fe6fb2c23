package service

import (
	"testing"
	"time"

	"github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTokenManager() app.TokenManager {
	return app.NewTokenManager(app.TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})
}

func TestAuthLogin(t *testing.T) {
	digest := util.GeneratePasswordDigest("takvim-admin")
	svc := NewAuthService(digest, newTestTokenManager(), zap.NewNop())

	result, err := svc.Login("takvim-admin", "203.0.113.9")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Greater(t, result.ExpiresAt, time.Now().Unix())

	_, err = svc.Login("wrong", "203.0.113.9")
	assert.ErrorIs(t, err, code.ErrorPasswordIncorrect)
}

func TestAuthLoginBcryptDigest(t *testing.T) {
	digest, err := util.GenerateBcryptDigest("takvim-admin")
	require.NoError(t, err)
	svc := NewAuthService(digest, newTestTokenManager(), zap.NewNop())

	_, err = svc.Login("takvim-admin", "203.0.113.9")
	assert.NoError(t, err)
	_, err = svc.Login("wrong", "203.0.113.9")
	assert.ErrorIs(t, err, code.ErrorPasswordIncorrect)
}

func TestAuthLoginWithoutDigest(t *testing.T) {
	svc := NewAuthService("", newTestTokenManager(), zap.NewNop())
	_, err := svc.Login("anything", "203.0.113.9")
	assert.ErrorIs(t, err, code.ErrorAdminDigestNotSet)
}
