package app

import (
	"fmt"
	"time"

	"github.com/takvimhub/event-calendar-service/pkg/util"

	"github.com/golang-jwt/jwt/v5"
)

// Default token issuer
const DefaultTokenIssuer = "event-calendar-service"

// TokenConfig configures the token manager.
type TokenConfig struct {
	SecretKey string        `yaml:"secret-key"` // JWT signing key
	Expiry    time.Duration `yaml:"expiry"`     // token lifetime, default 12h
	Issuer    string        `yaml:"issuer"`
}

// TokenManager issues and parses the admin session token. There is one
// shared admin identity; the claims carry the client IP so a stolen token
// shows up in access logs with a different origin.
type TokenManager interface {
	Generate(ip string) (string, time.Time, error)
	Parse(token string) (*AdminClaims, error)
	GetSecretKey() string
}

type tokenManager struct {
	config TokenConfig
}

// NewTokenManager creates a TokenManager instance.
func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = 12 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// AdminClaims is the admin session state attached to each request.
type AdminClaims struct {
	IP string `json:"ip"`
	jwt.RegisteredClaims
}

// signing key is salted with the machine id so tokens do not survive a
// host move
func signingKey(secretKey string) []byte {
	return []byte(secretKey + "_" + util.GetMachineID())
}

// Generate issues a new admin token.
func (t *tokenManager) Generate(ip string) (string, time.Time, error) {
	expiresAt := time.Now().Add(t.config.Expiry)
	claims := &AdminClaims{
		IP: ip,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    t.config.Issuer,
			Subject:   "admin-token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey(t.config.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a token and returns its claims.
func (t *tokenManager) Parse(token string) (*AdminClaims, error) {
	return ParseTokenWithKey(token, t.config.SecretKey)
}

// GetSecretKey returns the configured secret key.
func (t *tokenManager) GetSecretKey() string {
	return t.config.SecretKey
}

// ParseTokenWithKey parses a token with the given secret key.
func ParseTokenWithKey(tokenString string, secretKey string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
