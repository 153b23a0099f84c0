package notifier

import (
	"fmt"
	"strings"

	"github.com/AirPlr/smart-control-api/internal/config"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"gopkg.in/gomail.v2"
)

// Mailer envia os lembretes de follow-up por e-mail
type Mailer interface {
	SendFollowUpReminder(recipient string, followUps []*domain.FollowUp) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTP) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) SendFollowUpReminder(recipient string, followUps []*domain.FollowUp) error {
	if len(followUps) == 0 {
		return nil
	}

	var body strings.Builder
	body.WriteString("I seguenti follow-up sono in scadenza:\n\n")
	for _, followUp := range followUps {
		body.WriteString(fmt.Sprintf(
			"- %s (richiamo n. %d) in scadenza il %s\n",
			followUp.ClientName,
			followUp.Sequence,
			followUp.DueDate.Format("02/01/2006"),
		))
	}
	body.WriteString("\nSmart Control")

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", recipient)
	message.SetHeader("Subject", fmt.Sprintf("Promemoria: %d follow-up in scadenza", len(followUps)))
	message.SetBody("text/plain", body.String())

	return m.dialer.DialAndSend(message)
}
