// internal/savethedate/photo.go
package savethedate

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"everaftr-workers/internal/models"
)

// MaxPhotoBytes caps an attached photo.
const MaxPhotoBytes = 5 * 1024 * 1024

// Reasons an upload is not applied.
const (
	ReasonNoFile   = "no file selected"
	ReasonNotImage = "file is not an image"
	ReasonTooLarge = "file is larger than 5MB"
)

type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PhotoResult reports whether an upload replaced the card photo.
type PhotoResult struct {
	Applied  bool    `json:"applied"`
	Reason   string  `json:"reason,omitempty"`
	PhotoURL *string `json:"photoUrl"`
}

// mediaType is the declared type of up, sniffed from the bytes when the
// upload did not declare one.
func mediaType(up Upload) string {
	if up.ContentType != "" {
		return up.ContentType
	}
	return http.DetectContentType(up.Data)
}

// CheckPhoto returns the rejection reason for up, or "" when acceptable. Any
// image/* type is accepted, including ones the sniffer cannot recognize
// such as SVG and HEIC.
func CheckPhoto(up Upload) string {
	if len(up.Data) == 0 {
		return ReasonNoFile
	}
	if !strings.HasPrefix(mediaType(up), "image/") {
		return ReasonNotImage
	}
	if len(up.Data) > MaxPhotoBytes {
		return ReasonTooLarge
	}
	return ""
}

// AttachPhoto stores up on d as a data URL. A rejected upload leaves d alone.
func AttachPhoto(d *models.SaveTheDateData, up Upload) PhotoResult {
	if reason := CheckPhoto(up); reason != "" {
		return PhotoResult{Reason: reason, PhotoURL: d.PhotoURL}
	}
	url := EncodeDataURL(mediaType(up), up.Data)
	d.PhotoURL = &url
	return PhotoResult{Applied: true, PhotoURL: d.PhotoURL}
}

func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

var ErrNotDataURL = errors.New("not a base64 data URL")

// DecodeDataURL splits a base64 data URL into its media type and bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mime, data, nil
}
