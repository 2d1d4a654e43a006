package model

// Comment is a message exchanged on a request between a client and an admin.
type Comment struct {
	Meta
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
}
