package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseUserClaims] for a blank token string.
var ErrEmptyToken = errors.New("empty token")

// claimsValidator checks time-based claims of tokens whose signature is not
// verified locally.
var claimsValidator = jwt.NewValidator(jwt.WithExpirationRequired(), jwt.WithLeeway(0))

// ParseUserClaims decodes the claim set of a bearer token issued by the chat
// backend.
//
// When signKey is non-empty the token is fully validated: the signature must
// be HMAC-SHA256 with signKey and "exp" must be present and in the future,
// with zero leeway (expiry is exact). When signKey is empty the signature is
// not checked, the backend remains the authority on it, but the claims are
// still validated with the same exact expiry rules.
//
// Example usage:
//
//	claims, err := utils.ParseUserClaims(rawToken, cfg.App.TokenSignKey)
//	if err != nil {
//	    // reject the token
//	}
func ParseUserClaims(tokenString, signKey string) (models.UserClaims, error) {
	if tokenString == "" {
		return models.UserClaims{}, ErrEmptyToken
	}

	claims := &models.UserClaims{}
	if signKey == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return models.UserClaims{}, fmt.Errorf("error occurred decoding token claims: %w", err)
		}
		if err := claimsValidator.Validate(claims); err != nil {
			return models.UserClaims{}, fmt.Errorf("error occurred validating token claims: %w", err)
		}
		return *claims, nil
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	)
	if err != nil {
		return models.UserClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return *claims, nil
}
