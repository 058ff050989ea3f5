package models

// Credentials is the body of POST /token/login and POST /user/register.
type Credentials struct {
	// Name is the unique account name.
	Name string `json:"name"`

	// Password is sent as typed; hashing is the backend's concern.
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful POST /token/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Friend is an entry of GET /friend.
type Friend struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SendMessageRequest is the body of the send endpoints.
type SendMessageRequest struct {
	Msg string `json:"msg"`
}
