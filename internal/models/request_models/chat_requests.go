package request_models

// SendMessageRequest carries either text or a GIF reference; the service
// rejects messages carrying neither.
type SendMessageRequest struct {
	Message string `json:"message"`
	GifURL  string `json:"gifUrl"`
}
