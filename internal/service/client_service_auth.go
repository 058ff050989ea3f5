package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	session  *session.Store
	snapshot *ConversationSnapshot
	signKey  string

	logger *logger.Logger
}

// NewClientAuthService creates an AuthService. signKey verifies token
// signatures when non-empty.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, store *session.Store, snapshot *ConversationSnapshot, signKey string, log *logger.Logger) AuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		session:  store,
		snapshot: snapshot,
		signKey:  signKey,
		logger:   log.Component("auth"),
	}
}

// Login implements AuthService.
func (s *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.UserClaims, error) {
	creds.Name = strings.TrimSpace(creds.Name)
	if creds.Name == "" || creds.Password == "" {
		return models.UserClaims{}, ErrEmptyCredentials
	}

	token, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("name", creds.Name).Msg("login failed")
		return models.UserClaims{}, mapLoginError(err)
	}

	claims, err := utils.ParseUserClaims(token, s.signKey)
	if err != nil {
		s.logger.Err(err).Str("name", creds.Name).Msg("login returned an unusable token")
		return models.UserClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if err = s.session.Set(claims, token); err != nil {
		return models.UserClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	s.logger.Info().Int64("uid", claims.ID).Str("name", claims.Name).Msg("logged in")
	return claims, nil
}

// Register implements AuthService.
func (s *clientAuthService) Register(ctx context.Context, creds models.Credentials) error {
	creds.Name = strings.TrimSpace(creds.Name)
	if creds.Name == "" || creds.Password == "" {
		return ErrEmptyCredentials
	}

	if err := s.adapter.Register(ctx, creds); err != nil {
		s.logger.Err(err).Str("name", creds.Name).Msg("registration failed")
		return mapRegisterError(err)
	}

	s.logger.Info().Str("name", creds.Name).Msg("registered")
	return nil
}

// Logout implements AuthService.
func (s *clientAuthService) Logout() {
	s.session.Clear()
	s.snapshot.Reset()
	s.logger.Info().Msg("logged out")
}
