package notifier

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/jordan-wright/email"

	"sjsage522/pricetracker/internal/scraper"
	"sjsage522/pricetracker/logger"
	trackererrors "sjsage522/pricetracker/pkg/errors"
)

// Subject is the subject line of every price alert
const Subject = "Amazon Price Alert"

const componentName = "notifier"

// ErrUnknownContentType is returned for a body type other than plain or html
var ErrUnknownContentType = errors.New("unknown content type")

// SMTPSettings holds the SMTP server address and credentials
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Addr returns host:port
func (s SMTPSettings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// sendFunc delivers a composed message; (*email.Email).Send in production
type sendFunc func(e *email.Email, addr string, a smtp.Auth) error

// EmailNotifier implements Notifier over SMTP
type EmailNotifier struct {
	smtp        SMTPSettings
	sender      string
	recipients  []string
	contentType string
	send        sendFunc
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(settings SMTPSettings, sender string, recipients []string, contentType string) *EmailNotifier {
	return &EmailNotifier{
		smtp:        settings,
		sender:      sender,
		recipients:  recipients,
		contentType: contentType,
		send:        (*email.Email).Send,
	}
}

// ComposeMessage builds an email with a plain or html body
func ComposeMessage(from string, to []string, subject, body, contentType string) (*email.Email, error) {
	if subject == "" {
		subject = "No subject"
	}

	mail := email.NewEmail()
	mail.From = from
	mail.To = to
	mail.Subject = subject

	switch contentType {
	case "plain":
		mail.Text = []byte(body)
	case "html":
		mail.HTML = []byte(body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
	}

	return mail, nil
}

// alertBody renders the alert text for snapshot
func alertBody(snapshot scraper.ProductSnapshot, contentType string) string {
	if contentType == "html" {
		return fmt.Sprintf(`<p>%s is now <strong>%s</strong>.</p><p><a href="%s">%s</a></p>`,
			html.EscapeString(snapshot.Title),
			html.EscapeString(snapshot.DisplayPrice),
			html.EscapeString(snapshot.Link),
			html.EscapeString(snapshot.Link))
	}
	return fmt.Sprintf("%s is now %s.\n%s", snapshot.Title, snapshot.DisplayPrice, snapshot.Link)
}

// Notify composes the price alert and delivers it
func (n *EmailNotifier) Notify(ctx context.Context, snapshot scraper.ProductSnapshot) error {
	log := logger.ForNotifier()

	if err := ctx.Err(); err != nil {
		return trackererrors.NewDelivery(componentName, "price alert not sent", err)
	}

	mail, err := ComposeMessage(n.sender, n.recipients, Subject, alertBody(snapshot, n.contentType), n.contentType)
	if err != nil {
		return trackererrors.NewDelivery(componentName, "failed to compose price alert", err)
	}

	addr := n.smtp.Addr()
	var auth smtp.Auth
	if n.smtp.Username != "" {
		auth = smtp.PlainAuth("", n.smtp.Username, n.smtp.Password, n.smtp.Host)
	}

	err = n.send(mail, addr, auth)
	if err != nil && auth != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		log.Warn().Str("addr", addr).Msg("SMTP server does not support AUTH, sending without credentials")
		err = n.send(mail, addr, nil)
	}
	if err != nil {
		return trackererrors.NewDelivery(componentName, "failed to send price alert", err)
	}

	log.Info().
		Str("addr", addr).
		Strs("recipients", n.recipients).
		Msg("Price alert sent")
	return nil
}
