// internal/savethedate/share.go
package savethedate

import (
	"regexp"
	"strings"

	"everaftr-workers/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Channel is a share target.
type Channel string

const (
	ChannelFacebook Channel = "facebook"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTwitter  Channel = "twitter"
	ChannelCopy     Channel = "copy"
	ChannelNative   Channel = "native"
	ChannelDownload Channel = "download"
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
)

// NativeShareFileName is the attachment name handed to a device share sheet.
const NativeShareFileName = "save-the-date.png"

var deepLinkBases = map[Channel]string{
	ChannelFacebook: "https://www.facebook.com/sharer/sharer.php?quote=",
	ChannelWhatsApp: "https://wa.me/?text=",
	ChannelTwitter:  "https://twitter.com/intent/tweet?text=",
}

// ShareMessage is the announcement text. The date clause uses the long style
// whatever the template.
func ShareMessage(d models.SaveTheDateData) string {
	var b strings.Builder
	b.WriteString("Save the Date! ")
	b.WriteString(orDefault(d.BrideName, defaultBride))
	b.WriteString(" & ")
	b.WriteString(orDefault(d.GroomName, defaultGroom))
	if date := FormatDate(d.WeddingDate, DateLong); date != "" {
		b.WriteString(" are getting married on ")
		b.WriteString(date)
	}
	if venue := VenueLine(d); venue != "" {
		b.WriteString(" at ")
		b.WriteString(venue)
	}
	b.WriteString("!")
	return b.String()
}

// DeepLink builds the web share URL for a link channel.
func DeepLink(ch Channel, message string) (string, bool) {
	base, ok := deepLinkBases[ch]
	if !ok {
		return "", false
	}
	return base + EncodeURIComponent(message), true
}

// IsLinkChannel reports whether ch shares via a URL.
func IsLinkChannel(ch Channel) bool {
	_, ok := deepLinkBases[ch]
	return ok
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes every byte except A-Z a-z 0-9 and
// - _ . ! ~ * ' ( ), matching the browser function of the same name.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

var whitespaceRun = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)

var lower = cases.Lower(language.Und)

// DownloadFileName is save-the-date-<bride>-<groom>.png with whitespace runs
// turned into dashes and everything lower-cased.
func DownloadFileName(d models.SaveTheDateData) string {
	slug := func(v, def string) string {
		return lower.String(whitespaceRun.ReplaceAllString(orDefault(v, def), "-"))
	}
	return "save-the-date-" + slug(d.BrideName, "bride") + "-" + slug(d.GroomName, "groom") + ".png"
}
