package tui

import (
	"github.com/MKhiriev/go-chat-client/models"
)

// NavigateTo switches the root model to Page. A non-nil Payload is delivered
// to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

type LoginResult struct {
	Err    error
	Claims models.UserClaims
}

type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown by the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type snapshotTickMsg struct{}

type friendsLoadedMsg struct {
	friends []models.Friend
	err     error
}

// chat messages carry the id of the conversation that produced them so that
// late deliveries from a closed conversation are ignored
type chatHistoryMsg struct {
	id    int
	lines []models.ChatLine
}

type chatLineMsg struct {
	id   int
	line models.ChatLine
}

type chatErrorMsg struct {
	id  int
	err error
}

type chatClosedMsg struct {
	id  int
	err error
}

type usersFoundMsg struct {
	users []models.Friend
	err   error
}

type friendRequestSentMsg struct {
	name string
	err  error
}

type friendRequestsLoadedMsg struct {
	requests []models.FriendRequest
	err      error
}

type friendRequestReviewedMsg struct {
	approved bool
	err      error
}

type clearStatusMsg struct{}
