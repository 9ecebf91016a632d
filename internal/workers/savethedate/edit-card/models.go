// internal/workers/savethedate/edit-card/models.go
package editcard

import (
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/savethedate"
)

type Input struct {
	SessionID string              `json:"sessionId"`
	Changes   savethedate.Changes `json:"changes"`
}

// Output echoes the form without its photo; Card.HasPhoto tells whether one
// is attached.
type Output struct {
	SessionID        string                 `json:"sessionId"`
	SaveTheDate      models.SaveTheDateData `json:"saveTheDate"`
	Card             savethedate.Card       `json:"card"`
	ShareMessage     string                 `json:"shareMessage"`
	DownloadFileName string                 `json:"downloadFileName"`
}
