package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

const sendGridSendPath = "/v3/mail/send"

type sendGridMailAdapter struct {
	client *utils.HTTPClient

	apiKey string
	from   *mail.Email

	logger *logger.Logger
}

// NewSendGridMailAdapter constructs a [MailAdapter] posting to the SendGrid v3
// mail send endpoint under cfg.BaseURL. Every message is sent from
// cfg.FromAddress / cfg.FromName and authorised with cfg.APIKey.
//
// Returns an error if cfg.BaseURL cannot be parsed as an absolute URL.
func NewSendGridMailAdapter(cfg config.Mail, logger *logger.Logger) (MailAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &sendGridMailAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		from:   mail.NewEmail(cfg.FromName, cfg.FromAddress),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [MailAdapter]. It POSTs a single-recipient v3 message to
// /v3/mail/send. The text/plain part is omitted when email.PlainText is empty.
func (a *sendGridMailAdapter) Send(ctx context.Context, email models.Email) error {
	message := mail.NewSingleEmail(a.from, email.Subject, mail.NewEmail("", email.To), email.PlainText, email.HTML)

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(a.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(mail.GetRequestBody(message)).
		Post(sendGridSendPath)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("subject", email.Subject).Msg("mail provider refused the message")
		return err
	}

	return nil
}
