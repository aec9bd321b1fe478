package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Raphalinho91/user-accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTParams groups the inputs of [GenerateJWTToken].
type JWTParams struct {
	Issuer        string
	UserID        int64
	Username      string
	TokenDuration time.Duration
	SignKey       string
	// Now is the issuance instant. Zero means time.Now().
	Now time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a decimal string
//   - IssuedAt  (iat): params.Now
//   - ExpiresAt (exp): params.Now plus TokenDuration, rounded up to a whole
//     second so the token stays valid for at least TokenDuration
//   - username:        the account name the token is issued for
//
// Returns an error if the issuer, the sign key or a positive duration is missing.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.JWTParams{
//	    Issuer: "user-accounts", UserID: 42, Username: "alice",
//	    TokenDuration: time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(params JWTParams) (models.Token, error) {
	if params.Issuer == "" || params.TokenDuration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	// NumericDate claims carry whole seconds.
	expiresAt := now.Add(params.TokenDuration)
	if truncated := expiresAt.Truncate(time.Second); !truncated.Equal(expiresAt) {
		expiresAt = truncated.Add(time.Second)
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   strconv.FormatInt(params.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: params.Username,
		UserID:   params.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Presence of the expiration (exp) claim and its check against now()
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// now may be nil, in which case the wall clock is used.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}

	claims := models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Claims{}, errors.New("empty subject error")
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Claims{}, err
	}
	claims.UserID = userID

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
