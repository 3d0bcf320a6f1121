package share

import "time"

// CreateResponse represents the response for share link creation
type CreateResponse struct {
	ShareURL string `json:"shareUrl"`
	ShareID  string `json:"shareId"`
}

// SharedResponse represents the public view of a shared record
type SharedResponse struct {
	Topic       string    `json:"topic"`
	ContentType string    `json:"contentType"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
