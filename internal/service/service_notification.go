package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

const (
	confirmEmailPath  = "/api/auth/confirm-email"
	resetPasswordPath = "/auth/reset-password"

	subjectEmailConfirmation = "Email Confirmation"
	subjectResetPassword     = "Reset Password"
)

var (
	confirmationTemplate = template.Must(template.New("confirmation").Parse(
		`<p>Hello, <br> Thank you for joining {{.AppName}}. <br> Please <a href="{{.Link}}"> click here </a> to confirm your email.</p>`,
	))

	resetPasswordTemplate = template.Must(template.New("reset").Parse(
		`<p>Please <a href="{{.Link}}"> click here </a> to reset your password.</p>`,
	))
)

type mailView struct {
	AppName string
	Link    string
}

// notificationService renders the account emails and hands them to a
// MailAdapter. Confirmation links point at this API, reset links at the web
// client.
type notificationService struct {
	mailAdapter adapter.MailAdapter

	apiBaseURL    string
	clientBaseURL string
	appName       string

	logger *logger.Logger
}

func NewNotificationService(mailAdapter adapter.MailAdapter, cfg config.App, logger *logger.Logger) NotificationService {
	return &notificationService{
		mailAdapter:   mailAdapter,
		apiBaseURL:    cfg.APIBaseURL,
		clientBaseURL: cfg.ClientBaseURL,
		appName:       cfg.Name,
		logger:        logger,
	}
}

func (n *notificationService) SendEmailConfirmationMail(ctx context.Context, userID, email, token string) error {
	link, err := buildLink(n.apiBaseURL, confirmEmailPath, userID, token)
	if err != nil {
		return err
	}

	return n.send(ctx, email, subjectEmailConfirmation, confirmationTemplate, mailView{AppName: n.appName, Link: link})
}

func (n *notificationService) SendForgotPasswordMail(ctx context.Context, userID, email, token string) error {
	link, err := buildLink(n.clientBaseURL, resetPasswordPath, userID, token)
	if err != nil {
		return err
	}

	return n.send(ctx, email, subjectResetPassword, resetPasswordTemplate, mailView{AppName: n.appName, Link: link})
}

func (n *notificationService) send(ctx context.Context, to, subject string, tmpl *template.Template, view mailView) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, view); err != nil {
		return fmt.Errorf("rendering %q email: %w", subject, err)
	}

	err := n.mailAdapter.Send(ctx, models.Email{
		To:      to,
		Subject: subject,
		HTML:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("sending %q email: %w", subject, err)
	}

	logger.FromContext(ctx).Debug().Str("subject", subject).Msg("email sent")
	return nil
}

// buildLink returns base+path?userId=<userID>&token=<token> with both values
// query-escaped.
func buildLink(base, path, userID, token string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + path)
	if err != nil {
		return "", fmt.Errorf("invalid link base %q: %w", base, err)
	}

	u.RawQuery = "userId=" + url.QueryEscape(userID) + "&token=" + url.QueryEscape(token)
	return u.String(), nil
}
