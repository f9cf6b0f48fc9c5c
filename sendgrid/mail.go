package sendgrid

import (
	"context"
	"errors"
	"net/http"
)

// MessageIDHeader carries the ID SendGrid assigns to an accepted message.
const MessageIDHeader = "X-Message-Id"

// EmailAddress is a recipient or sender.
type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Email returns an address with an optional display name.
func Email(name, address string) *EmailAddress {
	return &EmailAddress{Email: address, Name: name}
}

// Personalization is one envelope of a message. Each personalization is
// delivered separately, with its own substitutions.
type Personalization struct {
	To                  []*EmailAddress   `json:"to"`
	CC                  []*EmailAddress   `json:"cc,omitempty"`
	BCC                 []*EmailAddress   `json:"bcc,omitempty"`
	From                *EmailAddress     `json:"from,omitempty"`
	Subject             string            `json:"subject,omitempty"`
	Headers             map[string]string `json:"headers,omitempty"`
	Substitutions       map[string]string `json:"substitutions,omitempty"`
	DynamicTemplateData map[string]any    `json:"dynamic_template_data,omitempty"`
	CustomArgs          map[string]string `json:"custom_args,omitempty"`
	SendAt              int64             `json:"send_at,omitempty"`
}

// NewPersonalization returns a personalization addressed to the given
// recipients.
func NewPersonalization(to ...*EmailAddress) *Personalization {
	return &Personalization{To: to}
}

// AddCCs appends carbon-copy recipients.
func (p *Personalization) AddCCs(cc ...*EmailAddress) *Personalization {
	p.CC = append(p.CC, cc...)
	return p
}

// AddBCCs appends blind carbon-copy recipients.
func (p *Personalization) AddBCCs(bcc ...*EmailAddress) *Personalization {
	p.BCC = append(p.BCC, bcc...)
	return p
}

// SetDynamicTemplateData sets one handlebars variable of a dynamic
// template.
func (p *Personalization) SetDynamicTemplateData(key string, value any) *Personalization {
	if p.DynamicTemplateData == nil {
		p.DynamicTemplateData = make(map[string]any)
	}
	p.DynamicTemplateData[key] = value
	return p
}

// Content is one body part.
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Attachment is a base64-encoded file.
type Attachment struct {
	Content     string `json:"content"`
	Type        string `json:"type,omitempty"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
}

// ASM ties a message to an unsubscribe group.
type ASM struct {
	GroupID         int64   `json:"group_id"`
	GroupsToDisplay []int64 `json:"groups_to_display,omitempty"`
}

// Setting is an on/off switch in mail and tracking settings.
type Setting struct {
	Enable bool `json:"enable"`
}

// MailSettings control delivery behaviour.
type MailSettings struct {
	BypassListManagement *Setting `json:"bypass_list_management,omitempty"`
	SandboxMode          *Setting `json:"sandbox_mode,omitempty"`
}

// TrackingSettings control click and open tracking.
type TrackingSettings struct {
	ClickTracking *ClickTracking `json:"click_tracking,omitempty"`
	OpenTracking  *Setting       `json:"open_tracking,omitempty"`
}

// ClickTracking rewrites links; EnableText also covers plain text bodies.
type ClickTracking struct {
	Enable     bool `json:"enable"`
	EnableText bool `json:"enable_text,omitempty"`
}

// Message is the body of a mail send request.
type Message struct {
	Personalizations []*Personalization `json:"personalizations"`
	From             *EmailAddress      `json:"from"`
	ReplyTo          *EmailAddress      `json:"reply_to,omitempty"`
	Subject          string             `json:"subject,omitempty"`
	Content          []Content          `json:"content,omitempty"`
	Attachments      []Attachment       `json:"attachments,omitempty"`
	TemplateID       string             `json:"template_id,omitempty"`
	Headers          map[string]string  `json:"headers,omitempty"`
	Categories       []string           `json:"categories,omitempty"`
	CustomArgs       map[string]string  `json:"custom_args,omitempty"`
	SendAt           int64              `json:"send_at,omitempty"`
	BatchID          string             `json:"batch_id,omitempty"`
	ASM              *ASM               `json:"asm,omitempty"`
	IPPoolName       string             `json:"ip_pool_name,omitempty"`
	MailSettings     *MailSettings      `json:"mail_settings,omitempty"`
	TrackingSettings *TrackingSettings  `json:"tracking_settings,omitempty"`
}

// NewMessage builds a single-recipient message. Empty bodies are left out;
// plain text comes first, as the API requires.
func NewMessage(from *EmailAddress, subject string, to *EmailAddress, plain, html string) *Message {
	m := &Message{
		From:             from,
		Subject:          subject,
		Personalizations: []*Personalization{NewPersonalization(to)},
	}
	if plain != "" {
		m.AddContent(Content{Type: "text/plain", Value: plain})
	}
	if html != "" {
		m.AddContent(Content{Type: "text/html", Value: html})
	}
	return m
}

// AddPersonalizations appends envelopes.
func (m *Message) AddPersonalizations(p ...*Personalization) *Message {
	m.Personalizations = append(m.Personalizations, p...)
	return m
}

// AddContent appends body parts.
func (m *Message) AddContent(c ...Content) *Message {
	m.Content = append(m.Content, c...)
	return m
}

// AddAttachments appends attachments.
func (m *Message) AddAttachments(a ...Attachment) *Message {
	m.Attachments = append(m.Attachments, a...)
	return m
}

// Send queues a message for delivery and returns the ID from the
// X-Message-Id header. The API accepts with 202 and delivers later.
func (c *Client) Send(ctx context.Context, msg *Message) (string, error) {
	if msg == nil {
		return "", errors.New("message is required")
	}
	if len(msg.Personalizations) == 0 {
		return "", errors.New("message needs at least one personalization")
	}

	resp, err := c.rest.Do(ctx, http.MethodPost, "/v3/mail/send", nil, msg, nil)
	if err != nil {
		return "", err
	}

	id := resp.Header.Get(MessageIDHeader)
	c.logger.Debug().
		Str("message_id", id).
		Int("personalizations", len(msg.Personalizations)).
		Msg("message queued")
	return id, nil
}
