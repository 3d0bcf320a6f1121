package topics

// Request represents the request body for topic suggestion
type Request struct {
	ContentType string `json:"contentType" binding:"required,oneof=profile review info"`
	Industry    string `json:"industry" binding:"omitempty,max=100"`
}

// Response represents the response for topic suggestion
type Response struct {
	Topics         []string `json:"topics"`
	ContentType    string   `json:"contentType"`
	RemainingCount int      `json:"remainingCount"`
	MaxDaily       int      `json:"maxDaily"`
}
