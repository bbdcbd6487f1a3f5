package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when the access token carries no "sub" claim.
var ErrEmptySubject = errors.New("empty subject error")

// ParseSubject returns the "sub" claim of an access token without verifying
// its signature. The client never holds the server's signing key; it only
// needs the user identifier the token was issued for.
//
// The optional "Bearer " prefix is stripped before parsing.
//
// Example usage:
//
//	userID, err := utils.ParseSubject(cfg.App.AccessToken)
func ParseSubject(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return "", fmt.Errorf("error parsing access token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if sub == "" {
		return "", ErrEmptySubject
	}

	return sub, nil
}

// TokenExpiresAt returns the "exp" claim of an unverified token and false if
// the token has no expiry.
func TokenExpiresAt(tokenString string) (time.Time, bool) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
