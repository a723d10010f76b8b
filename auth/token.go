package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"fullname"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens. All session state
// lives in the token itself.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenService(secret []byte, issuer, audience string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue mints a token for the given identity and returns it together with
// its expiry time.
func (s *TokenService) Issue(identity Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Username: identity.Username,
		Email:    identity.Email,
		FullName: identity.FullName,
		Roles:    identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.UserID), 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Validate verifies signature, issuer, audience, and expiry (no clock-skew
// leeway) and rebuilds the identity embedded in the token.
func (s *TokenService) Validate(tokenString string) (Identity, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return Identity{}, ErrInvalidToken
	}
	if !claims.VerifyAudience(s.audience, true) {
		return Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || userID == 0 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   uint(userID),
		Username: claims.Username,
		Email:    claims.Email,
		FullName: claims.FullName,
		Roles:    claims.Roles,
	}, nil
}
