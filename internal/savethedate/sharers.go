// internal/savethedate/sharers.go
package savethedate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"

	commonaws "everaftr-workers/internal/common/aws"
	"everaftr-workers/internal/models"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

var (
	ErrNoRecipients   = errors.New("no recipients")
	ErrUnknownChannel = errors.New("unknown share channel")
)

// ShareRequest is one share of a card. Card may be nil; channels that need
// the image render it themselves.
type ShareRequest struct {
	Data       models.SaveTheDateData
	Message    string
	Recipients []string
	Card       *Rendered
	Scale      float64
}

// ShareReceipt describes what a channel produced.
type ShareReceipt struct {
	Channel    Channel  `json:"channel"`
	URL        string   `json:"url,omitempty"`
	Text       string   `json:"text,omitempty"`
	FileName   string   `json:"fileName,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	MessageIDs []string `json:"messageIds,omitempty"`
}

type Sharer interface {
	Channel() Channel
	Share(ctx context.Context, req ShareRequest) (*ShareReceipt, error)
}

// LinkSharer builds a social deep link for the announcement.
type LinkSharer struct{ channel Channel }

func NewLinkSharer(ch Channel) (*LinkSharer, error) {
	if !IsLinkChannel(ch) {
		return nil, fmt.Errorf("%w: %s is not a link channel", ErrUnknownChannel, ch)
	}
	return &LinkSharer{channel: ch}, nil
}

func (s *LinkSharer) Channel() Channel { return s.channel }

func (s *LinkSharer) Share(ctx context.Context, req ShareRequest) (*ShareReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url, _ := DeepLink(s.channel, req.Message)
	return &ShareReceipt{Channel: s.channel, URL: url}, nil
}

// CopySharer hands back the text for the clipboard.
type CopySharer struct{}

func (CopySharer) Channel() Channel { return ChannelCopy }

func (CopySharer) Share(ctx context.Context, req ShareRequest) (*ShareReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ShareReceipt{Channel: ChannelCopy, Text: req.Message}, nil
}

// FileSharer attaches the rendered PNG, for download or a device share sheet.
type FileSharer struct {
	channel  Channel
	fileName func(models.SaveTheDateData) string
}

func NewDownloadSharer() *FileSharer {
	return &FileSharer{channel: ChannelDownload, fileName: DownloadFileName}
}

func NewNativeSharer() *FileSharer {
	return &FileSharer{
		channel:  ChannelNative,
		fileName: func(models.SaveTheDateData) string { return NativeShareFileName },
	}
}

func (s *FileSharer) Channel() Channel { return s.channel }

func (s *FileSharer) Share(ctx context.Context, req ShareRequest) (*ShareReceipt, error) {
	card, err := ensureCard(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ShareReceipt{
		Channel:  s.channel,
		Text:     req.Message,
		FileName: s.fileName(req.Data),
		ImageURL: card.DataURL(),
	}, nil
}

func ensureCard(ctx context.Context, req ShareRequest) (*Rendered, error) {
	if req.Card != nil {
		return req.Card, nil
	}
	return Render(ctx, req.Data, req.Scale)
}

// EmailSharer mails the announcement through SES.
type EmailSharer struct {
	client commonaws.SESAPI
	from   string
}

func NewEmailSharer(client commonaws.SESAPI, from string) *EmailSharer {
	return &EmailSharer{client: client, from: from}
}

func (s *EmailSharer) Channel() Channel { return ChannelEmail }

func (s *EmailSharer) Share(ctx context.Context, req ShareRequest) (*ShareReceipt, error) {
	if len(req.Recipients) == 0 {
		return nil, ErrNoRecipients
	}
	card, err := ensureCard(ctx, req)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf(`<p>%s</p><p><img src="%s" alt="Save the Date" width="%d"></p>`,
		html.EscapeString(req.Message), card.DataURL(), CardWidth)
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      awssdk.String(s.from),
		Destination: &sestypes.Destination{ToAddresses: req.Recipients},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: awssdk.String("Save the Date"), Charset: awssdk.String("UTF-8")},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: awssdk.String(req.Message), Charset: awssdk.String("UTF-8")},
				Html: &sestypes.Content{Data: awssdk.String(body), Charset: awssdk.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ses send: %w", err)
	}
	return &ShareReceipt{
		Channel:    ChannelEmail,
		Text:       req.Message,
		MessageIDs: []string{awssdk.ToString(out.MessageId)},
	}, nil
}

// SMSSharer texts the announcement to each recipient through SNS.
type SMSSharer struct {
	client   commonaws.SNSAPI
	senderID string
}

func NewSMSSharer(client commonaws.SNSAPI, senderID string) *SMSSharer {
	return &SMSSharer{client: client, senderID: senderID}
}

func (s *SMSSharer) Channel() Channel { return ChannelSMS }

// Share stops at the first failed publish; IDs of messages already sent are
// still returned alongside the error.
func (s *SMSSharer) Share(ctx context.Context, req ShareRequest) (*ShareReceipt, error) {
	if len(req.Recipients) == 0 {
		return nil, ErrNoRecipients
	}
	var attrs map[string]snstypes.MessageAttributeValue
	if s.senderID != "" {
		attrs = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {DataType: awssdk.String("String"), StringValue: awssdk.String(s.senderID)},
		}
	}

	receipt := &ShareReceipt{Channel: ChannelSMS, Text: req.Message}
	for _, phone := range req.Recipients {
		out, err := s.client.Publish(ctx, &sns.PublishInput{
			PhoneNumber:       awssdk.String(phone),
			Message:           awssdk.String(req.Message),
			MessageAttributes: attrs,
		})
		if err != nil {
			return receipt, fmt.Errorf("sns publish to %s: %w", phone, err)
		}
		receipt.MessageIDs = append(receipt.MessageIDs, awssdk.ToString(out.MessageId))
	}
	return receipt, nil
}

// Sharers indexes the configured channels.
type Sharers map[Channel]Sharer

// DefaultSharers returns the channels that need no outside service.
func DefaultSharers() Sharers {
	s := Sharers{}
	for _, ch := range []Channel{ChannelFacebook, ChannelWhatsApp, ChannelTwitter} {
		ls, _ := NewLinkSharer(ch)
		s.Add(ls)
	}
	s.Add(CopySharer{})
	s.Add(NewDownloadSharer())
	s.Add(NewNativeSharer())
	return s
}

func (s Sharers) Add(sh Sharer) { s[sh.Channel()] = sh }

func (s Sharers) Get(ch Channel) (Sharer, error) {
	sh, ok := s[ch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, ch)
	}
	return sh, nil
}

// Channels lists the configured channels in sorted order.
func (s Sharers) Channels() []Channel {
	out := make([]Channel, 0, len(s))
	for ch := range s {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
