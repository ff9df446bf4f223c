package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const issuer = "helpdesk"

// Claims identify the user and the server-side session the token belongs to.
// The role is informational; authorization reloads the user.
type Claims struct {
	UserID    uint    `json:"user_id"`
	SessionID string  `json:"session_id"`
	Role      vo.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token and returns it with its expiry.
func (s *JWTService) Generate(userID uint, sessionID string, role vo.Role) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(s.AccessTTL())

	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(biztime.NowUTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AccessTTL is the lifetime of access tokens and of the sessions behind them.
func (s *JWTService) AccessTTL() time.Duration {
	return time.Duration(s.accessExpMinutes) * time.Minute
}

// ParseAccessToken verifies the token and returns the user and session it names.
func (s *JWTService) ParseAccessToken(tokenString string) (uint, string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return 0, "", err
	}
	return claims.UserID, claims.SessionID, nil
}
