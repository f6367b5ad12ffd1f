package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"simvia/internal/domain/order"
	"simvia/internal/shared/config"
)

// Sender delivers transactional mail. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendOrderConfirmation(ord *order.Order) error
}

type SMTPSender struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPSender) SendOrderConfirmation(ord *order.Order) error {
	subject := fmt.Sprintf("Your eSIM order %s", ord.Number())

	var htmlActivations strings.Builder
	var plainActivations strings.Builder
	for _, item := range ord.Items() {
		for i, act := range item.Activations {
			fmt.Fprintf(&htmlActivations, `
				<h3>eSIM %d</h3>
				<ul>
					<li>SM-DP+ address: %s</li>
					<li>Activation code: %s</li>
					<li>ICCID: %s</li>
					<li>LPA string: <code>%s</code></li>
				</ul>`,
				i+1, act.SMDPAddress, act.ActivationCode, act.ICCID, act.LPAString)

			fmt.Fprintf(&plainActivations, `
eSIM %d
  SM-DP+ address:  %s
  Activation code: %s
  ICCID:           %s
  LPA string:      %s
`,
				i+1, act.SMDPAddress, act.ActivationCode, act.ICCID, act.LPAString)
		}
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thank you for your order</h2>
			<p>Order <strong>%s</strong> has been received. Your eSIM activation details are below.</p>
			%s
			<p>Scan the LPA string as a QR code or enter the details manually in your device settings.</p>
		</body>
		</html>
	`, ord.Number(), htmlActivations.String())

	plainBody := fmt.Sprintf(`
Thank you for your order

Order %s has been received. Your eSIM activation details are below.
%s
Scan the LPA string as a QR code or enter the details manually in your device settings.
	`, ord.Number(), plainActivations.String())

	return s.sendEmail(ord.CustomerEmail(), subject, htmlBody, plainBody)
}

func (s *SMTPSender) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopSender is used when outbound mail is disabled in configuration.
type NoopSender struct{}

func (NoopSender) SendOrderConfirmation(*order.Order) error { return nil }
