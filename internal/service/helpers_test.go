package service

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSignKey = "abc"

// signedToken выпускает HS256 токен так же, как это делает бэкенд
func signedToken(t *testing.T, claims models.UserClaims) string {
	t.Helper()

	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	}
	if claims.Role == "" {
		claims.Role = models.RoleUser
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return token
}

type pushCall struct {
	Target models.Target
	Mid    int64
}

// spyTracker записывает вызовы Push синхронно
type spyTracker struct {
	mu    sync.Mutex
	calls []pushCall
}

func (s *spyTracker) Push(target models.Target, mid int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, pushCall{Target: target, Mid: mid})
}

func (s *spyTracker) Wait() {}

func (s *spyTracker) Calls() []pushCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pushCall, len(s.calls))
	copy(out, s.calls)
	return out
}

func userSummary(uid, mid int64, name string) models.UserConversation {
	return models.UserConversation{UID: uid, UserName: name, Mid: mid, Msg: "last"}
}

func groupSummary(gid, mid int64, name string) models.GroupConversation {
	return models.GroupConversation{GID: gid, GroupName: name, Mid: mid, Msg: "last"}
}
