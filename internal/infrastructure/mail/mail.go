package mail

import (
	"context"
	"fmt"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/utils"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var statusMessages = map[string]string{
	"pending":   "Your seller profile is complete and has been submitted for review.",
	"approved":  "Your seller profile has been approved. You can now list products.",
	"rejected":  "Your seller profile was rejected.",
	"suspended": "Your seller account has been suspended.",
}

type SMTPNotifier struct {
	config config.SMTPConfig
	send   func(message *gomail.Message) error
}

func CreateSMTPNotifier(conf config.SMTPConfig) *SMTPNotifier {
	n := &SMTPNotifier{config: conf}
	n.send = func(message *gomail.Message) error {
		return utils.SendEmail(message, conf.Sender, conf.Password, conf.Server, conf.Port)
	}

	return n
}

func (n *SMTPNotifier) NotifyProfileStatus(ctx context.Context, to, name, status, reason string) error {
	body, ok := statusMessages[status]
	if !ok {
		return nil
	}

	if status == "rejected" && reason != "" {
		body = fmt.Sprintf("%s Reason: %s", body, reason)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.config.Sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Seller profile %s", status))
	m.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\n%s\n", name, body))

	if err := n.send(m); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "NotifyProfileStatus").Msg("")
		return err
	}

	return nil
}

// NoopNotifier is used when SMTP is not configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyProfileStatus(ctx context.Context, to, name, status, reason string) error {
	return nil
}
