package savethedate

import (
	"testing"

	"everaftr-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestShareMessage(t *testing.T) {
	tests := []struct {
		name string
		data models.SaveTheDateData
		want string
	}{
		{
			name: "empty form",
			data: models.SaveTheDateData{},
			want: "Save the Date! Bride & Groom!",
		},
		{
			name: "everything",
			data: models.SaveTheDateData{
				BrideName: "Maria", GroomName: "Jose", WeddingDate: "2026-12-05",
				Venue: "Manila Cathedral", Location: "Intramuros",
				TemplateID: models.TemplateModernMinimal,
			},
			want: "Save the Date! Maria & Jose are getting married on December 5, 2026 at Manila Cathedral, Intramuros!",
		},
		{
			name: "location only",
			data: models.SaveTheDateData{BrideName: "Maria", Location: "Boracay"},
			want: "Save the Date! Maria & Groom at Boracay!",
		},
		{
			name: "invalid date is left out",
			data: models.SaveTheDateData{WeddingDate: "soon"},
			want: "Save the Date! Bride & Groom!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShareMessage(tt.data))
		})
	}
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b%26c%2Fd%3F", EncodeURIComponent("a b&c/d?"))
	assert.Equal(t, "-_.!~*'()", EncodeURIComponent("-_.!~*'()"))
	assert.Equal(t, "Ma%C3%B1ana%2C%20%23love", EncodeURIComponent("Mañana, #love"))
}

func TestDeepLink(t *testing.T) {
	msg := "Save the Date! A & B!"

	url, ok := DeepLink(ChannelWhatsApp, msg)
	assert.True(t, ok)
	assert.Equal(t, "https://wa.me/?text=Save%20the%20Date!%20A%20%26%20B!", url)

	url, ok = DeepLink(ChannelFacebook, msg)
	assert.True(t, ok)
	assert.Contains(t, url, "https://www.facebook.com/sharer/sharer.php?quote=")

	url, ok = DeepLink(ChannelTwitter, msg)
	assert.True(t, ok)
	assert.Contains(t, url, "https://twitter.com/intent/tweet?text=")

	_, ok = DeepLink(ChannelEmail, msg)
	assert.False(t, ok)
}

func TestDownloadFileName(t *testing.T) {
	assert.Equal(t, "save-the-date-bride-groom.png", DownloadFileName(models.SaveTheDateData{}))
	assert.Equal(t, "save-the-date-maria-clara-juan-dela-cruz.png", DownloadFileName(models.SaveTheDateData{
		BrideName: "Maria  Clara",
		GroomName: "Juan Dela\tCruz",
	}))
	assert.Equal(t, "save-the-date-maria-clara-juan-dela-cruz.png", DownloadFileName(models.SaveTheDateData{
		BrideName: "Maria\u00a0Clara",
		GroomName: "Juan\u2003Dela \u3000Cruz",
	}))
}
