package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/solvetrack/solvetrack/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT binding the
// given account ID.
//
// The token carries a single claim:
//   - Subject (sub): the account ID encoded as a base-10 string
//
// There is deliberately no expiry claim and no issuer claim: a session
// credential stays valid until the signing key is rotated. Signing is
// deterministic for a given (signKey, accountID) pair since HS256 uses no
// nonce, but callers must rely only on successful verification, not on
// byte-for-byte equality of issued tokens.
//
// Returns an error if accountID is non-positive, signKey is empty, or
// signing fails.
func GenerateSessionToken(accountID int64, signKey string) (models.Token, error) {
	if accountID <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	claims := &jwt.RegisteredClaims{
		Subject: strconv.FormatInt(accountID, 10),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, AccountID: accountID}, nil
}

// ValidateSessionToken verifies the given session JWT string and extracts
// the account ID from its subject claim.
//
// Validation covers:
//   - Signature verification against signKey (HS256 only)
//   - Subject (sub) claim presence and conversion to int64
//
// Elapsed time never invalidates a session token: no expiry claim is issued
// and none is checked.
//
// Returns an error if the token is malformed, the signature does not
// validate, or the subject is missing or non-numeric.
func ValidateSessionToken(tokenString, signKey string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to account ID: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, AccountID: accountID}, nil
}

// ParseBearerToken extracts the credential part from a raw
// "Authorization: <scheme> <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
