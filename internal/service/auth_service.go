package service

import (
	"github.com/takvimhub/event-calendar-service/internal/dto"
	"github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/util"

	"go.uber.org/zap"
)

// AuthService verifies the shared admin credential against its stored
// digest and issues short lived bearer tokens. The digest is supplied
// externally (config or environment), never hardcoded; there is no logout
// state on the server, tokens simply expire.
type AuthService struct {
	digest string
	tokens app.TokenManager
	logger *zap.Logger
}

func NewAuthService(digest string, tokens app.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		digest: digest,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks the password against the configured digest and returns a
// token. The compare is constant time regardless of where it mismatches.
func (s *AuthService) Login(password, clientIP string) (*dto.LoginResult, error) {
	if s.digest == "" {
		return nil, code.ErrorAdminDigestNotSet
	}
	if !util.VerifyPasswordDigest(password, s.digest) {
		s.logger.Warn("admin login rejected", zap.String("ip", clientIP))
		return nil, code.ErrorPasswordIncorrect
	}

	token, expiresAt, err := s.tokens.Generate(clientIP)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}
	s.logger.Info("admin login accepted", zap.String("ip", clientIP))
	return &dto.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
