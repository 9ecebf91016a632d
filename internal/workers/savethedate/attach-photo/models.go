// internal/workers/savethedate/attach-photo/models.go
package attachphoto

// Input carries the upload. Data is raw base64 or a complete data URL; a data
// URL's media type stands in for a missing ContentType.
type Input struct {
	SessionID   string `json:"sessionId"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data"`
}

type Output struct {
	SessionID string `json:"sessionId"`
	Applied   bool   `json:"applied"`
	Reason    string `json:"reason,omitempty"`
	HasPhoto  bool   `json:"hasPhoto"`
}
