// internal/workers/savethedate/share-card/models.go
package sharecard

import (
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/savethedate"
)

type Input struct {
	SessionID   string                  `json:"sessionId,omitempty"`
	SaveTheDate *models.SaveTheDateData `json:"saveTheDate,omitempty"`
	Channels    []savethedate.Channel   `json:"channels"`
	Recipients  Recipients              `json:"recipients"`
	Scale       float64                 `json:"scale,omitempty"`
}

type Recipients struct {
	Email []string `json:"email,omitempty"`
	SMS   []string `json:"sms,omitempty"`
}

// Result statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// ChannelResult is the outcome of one channel. Receipt may be partially
// filled on failure (SMS stops at the first failed number).
type ChannelResult struct {
	Channel   savethedate.Channel       `json:"channel"`
	Status    string                    `json:"status"`
	Receipt   *savethedate.ShareReceipt `json:"receipt,omitempty"`
	ErrorCode string                    `json:"errorCode,omitempty"`
	Error     string                    `json:"error,omitempty"`
}

type Output struct {
	Message string          `json:"message"`
	Results []ChannelResult `json:"results"`
	Sent    int             `json:"sent"`
	Failed  int             `json:"failed"`
}
