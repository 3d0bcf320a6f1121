package generate

// Request represents the request body for content generation
type Request struct {
	Topic       string `json:"topic" binding:"required,max=500"`
	ContentType string `json:"contentType" binding:"required,oneof=profile review info"`
	Tone        string `json:"tone" binding:"omitempty,oneof=formal casual"`
}

// Response represents the response for content generation
type Response struct {
	ID             int    `json:"id"`
	Content        string `json:"content"`
	ContentType    string `json:"contentType"`
	Topic          string `json:"topic"`
	RemainingCount int    `json:"remainingCount"`
	MaxDaily       int    `json:"maxDaily"`
}
