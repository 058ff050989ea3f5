package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
)

type friendService struct {
	adapter adapter.ServerAdapter
	session *session.Store

	logger *logger.Logger
}

// NewFriendService creates a FriendService acting on behalf of the session
// held by store.
func NewFriendService(serverAdapter adapter.ServerAdapter, store *session.Store, log *logger.Logger) FriendService {
	return &friendService{
		adapter: serverAdapter,
		session: store,
		logger:  log.Component("friends"),
	}
}

// Find implements FriendService.
func (s *friendService) Find(ctx context.Context, name string) ([]models.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySearch
	}

	token, err := s.session.Token()
	if err != nil {
		return nil, err
	}

	users, err := s.adapter.FindUsers(ctx, token, name)
	if err != nil {
		s.logger.Err(err).Str("name", name).Msg("user search failed")
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

// Request implements FriendService.
func (s *friendService) Request(ctx context.Context, uid int64) error {
	token, err := s.session.Token()
	if err != nil {
		return err
	}

	if err = s.adapter.SendFriendRequest(ctx, token, uid); err != nil {
		s.logger.Err(err).Int64("peer", uid).Msg("friend request failed")
		if errors.Is(err, adapter.ErrConflict) {
			return ErrAlreadyRequested
		}
		return fmt.Errorf("%w: %w", ErrFriendRequest, err)
	}

	s.logger.Info().Int64("peer", uid).Msg("friend request sent")
	return nil
}

// Requests implements FriendService.
func (s *friendService) Requests(ctx context.Context) ([]models.FriendRequest, error) {
	token, err := s.session.Token()
	if err != nil {
		return nil, err
	}

	reqs, err := s.adapter.FriendRequests(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load friend requests: %w", err)
	}
	return reqs, nil
}

// Review implements FriendService.
func (s *friendService) Review(ctx context.Context, req models.FriendRequest, approve bool) error {
	if !req.Status.Pending() {
		return ErrRequestReviewed
	}

	token, err := s.session.Token()
	if err != nil {
		return err
	}

	status := models.FriendRequestReject
	if approve {
		status = models.FriendRequestApprove
	}

	review := models.FriendRequestReview{ID: req.ID, Status: status}
	if err = s.adapter.ReviewFriendRequest(ctx, token, review); err != nil {
		s.logger.Err(err).Int64("request", req.ID).Str("status", string(status)).Msg("friend request review failed")
		return fmt.Errorf("%w: %w", ErrFriendRequest, err)
	}

	s.logger.Info().Int64("request", req.ID).Str("status", string(status)).Msg("friend request reviewed")
	return nil
}
