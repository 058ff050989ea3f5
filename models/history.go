package models

// HistoryMessage is one message of a conversation history as returned by
// GET /user/{uid}/history and GET /group/{gid}/history. FromName is only
// filled for group histories.
type HistoryMessage struct {
	Mid      int64     `json:"mid"`
	Msg      string    `json:"msg"`
	Time     Timestamp `json:"time"`
	FromUID  int64     `json:"from_uid"`
	FromName string    `json:"name_of_from_uid,omitempty"`
}
