package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/go-resty/resty/v2"
)

// maxErrorBodySize bounds how much of a failed stream response is read for
// the error message.
const maxErrorBodySize = 4 << 10

type httpServerAdapter struct {
	client *utils.HTTPClient
	// stream has no timeout: the event stream lives as long as the chat view.
	stream *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the REST client with adapterCfg.RequestTimeout. The event stream
// uses a separate client without a timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	stream := utils.NewHTTPClient()
	stream.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, stream: stream, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /token/login and returns the access_token of the response.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/token/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	token := strings.TrimSpace(result.AccessToken)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /user/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// RenewToken implements [ServerAdapter]. The backend answers
// PATCH /token/renew with the new token as the plain response body; a JSON
// string body is accepted too.
func (h *httpServerAdapter) RenewToken(ctx context.Context, token string) (string, error) {
	resp, err := h.authedRequest(ctx, token).Patch("/token/renew")
	if err != nil {
		return "", fmt.Errorf("renew token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	renewed := strings.TrimSpace(string(resp.Body()))
	if strings.HasPrefix(renewed, `"`) {
		var s string
		if err = json.Unmarshal([]byte(renewed), &s); err != nil {
			return "", fmt.Errorf("decode renewed token: %w", err)
		}
		renewed = strings.TrimSpace(s)
	}
	if renewed == "" {
		return "", ErrEmptyToken
	}

	return renewed, nil
}

// RecentConversations implements [ServerAdapter].
func (h *httpServerAdapter) RecentConversations(ctx context.Context, token string, limit int) ([]models.ConversationSummary, error) {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("limit", fmt.Sprint(limit)).
		Get("/user/history/{limit}")
	if err != nil {
		return nil, fmt.Errorf("recent conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	items, err := models.DecodeConversations(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode recent conversations: %w", err)
	}
	return items, nil
}

// History implements [ServerAdapter].
func (h *httpServerAdapter) History(ctx context.Context, token string, target models.Target) ([]models.HistoryMessage, error) {
	path, err := targetPath(target, "history")
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx, token).Get(path)
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.HistoryMessage
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}
	return messages, nil
}

// SendMessage implements [ServerAdapter].
func (h *httpServerAdapter) SendMessage(ctx context.Context, token string, target models.Target, msg string) error {
	path, err := targetPath(target, "send")
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SendMessageRequest{Msg: msg}).
		Post(path)
	if err != nil {
		return fmt.Errorf("send message request: %w", err)
	}

	return mapHTTPError(resp)
}

// PutReadIndex implements [ServerAdapter].
func (h *httpServerAdapter) PutReadIndex(ctx context.Context, token string, update models.ReadIndexUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode read index: %w", err)
	}

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/ri")
	if err != nil {
		return fmt.Errorf("read index request: %w", err)
	}

	return mapHTTPError(resp)
}

// Friends implements [ServerAdapter].
func (h *httpServerAdapter) Friends(ctx context.Context, token string) ([]models.Friend, error) {
	resp, err := h.authedRequest(ctx, token).Get("/friend")
	if err != nil {
		return nil, fmt.Errorf("friends request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var friends []models.Friend
	if err = json.Unmarshal(resp.Body(), &friends); err != nil {
		return nil, fmt.Errorf("decode friends response: %w", err)
	}

	return friends, nil
}

// FindUsers implements [ServerAdapter].
func (h *httpServerAdapter) FindUsers(ctx context.Context, token string, name string) ([]models.Friend, error) {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("name", name).
		Get("/user/find/{name}")
	if err != nil {
		return nil, fmt.Errorf("find users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.Friend
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode find users response: %w", err)
	}

	return users, nil
}

// SendFriendRequest implements [ServerAdapter].
func (h *httpServerAdapter) SendFriendRequest(ctx context.Context, token string, uid int64) error {
	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("uid", fmt.Sprint(uid)).
		SetBody(struct{}{}).
		Post("/friend/req/{uid}")
	if err != nil {
		return fmt.Errorf("friend request: %w", err)
	}

	return mapHTTPError(resp)
}

// FriendRequests implements [ServerAdapter].
func (h *httpServerAdapter) FriendRequests(ctx context.Context, token string) ([]models.FriendRequest, error) {
	resp, err := h.authedRequest(ctx, token).Get("/friend/req")
	if err != nil {
		return nil, fmt.Errorf("friend requests request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var reqs []models.FriendRequest
	if err = json.Unmarshal(resp.Body(), &reqs); err != nil {
		return nil, fmt.Errorf("decode friend requests response: %w", err)
	}

	return reqs, nil
}

// ReviewFriendRequest implements [ServerAdapter].
func (h *httpServerAdapter) ReviewFriendRequest(ctx context.Context, token string, review models.FriendRequestReview) error {
	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(review).
		Post("/friend/req")
	if err != nil {
		return fmt.Errorf("review friend request: %w", err)
	}

	return mapHTTPError(resp)
}

// OpenEventStream implements [ServerAdapter]. The response body is returned
// unread; resty does not buffer it.
func (h *httpServerAdapter) OpenEventStream(ctx context.Context, token string) (io.ReadCloser, error) {
	resp, err := h.stream.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		SetDoNotParseResponse(true).
		Get("/event/stream")
	if err != nil {
		return nil, fmt.Errorf("event stream request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		defer body.Close()
		msg, _ := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
		return nil, mapHTTPStatus(resp.StatusCode(), msg)
	}

	h.logger.Debug().Str("content_type", resp.Header().Get("Content-Type")).Msg("event stream opened")
	return body, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func targetPath(target models.Target, action string) (string, error) {
	switch t := target.(type) {
	case models.UserTarget:
		return fmt.Sprintf("/user/%d/%s", t.UID, action), nil
	case models.GroupTarget:
		return fmt.Sprintf("/group/%d/%s", t.GID, action), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownTarget, target)
	}
}
