package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, iat, exp,
// iss) and adds the username the token was issued for.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the account name at issuance time.
	Username string `json:"username"`

	// UserID is the parsed copy of the "sub" claim. It is populated by the
	// token service after verification and never serialized.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the "sub" claim and parses it
// as a base-10 int64.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is an issued access token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the payload the token was signed with.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
