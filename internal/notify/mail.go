package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// MailConfig holds SMTP delivery settings.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Currency string
}

// Message is a rendered mail ready to send.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Compose renders the booking confirmation mail for ev.
func Compose(ev Event, currency string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", ev.RecipientName)
	b.WriteString("Your booking has been received.\n\n")
	fmt.Fprintf(&b, "Auditorium: %s\n", ev.ResourceName)
	fmt.Fprintf(&b, "Date: %s\n", ev.Date)
	fmt.Fprintf(&b, "Time: %s - %s\n", ev.StartTime, ev.EndTime)
	fmt.Fprintf(&b, "Total Cost: %s%s\n", currency, ev.TotalCost)
	fmt.Fprintf(&b, "Status: %s\n\n", statusLabel(ev.Status))
	b.WriteString("Thank you for using our system!")

	return Message{
		To:      ev.Recipient,
		Subject: "Booking Confirmation - " + ev.ResourceName,
		Body:    b.String(),
	}
}

func statusLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Mailer sends booking confirmations over SMTP.
type Mailer struct {
	cfg    MailConfig
	client *mail.Client
}

func NewMailer(cfg MailConfig) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &Mailer{cfg: cfg, client: client}, nil
}

// Notify renders and sends the confirmation for ev, so a Mailer can also be
// used directly as the service's Notifier.
func (m *Mailer) Notify(ctx context.Context, ev Event) error {
	return m.Send(ctx, Compose(ev, m.cfg.Currency))
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mail has no recipient")
	}

	mm := mail.NewMsg()
	if err := mm.From(m.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

// HandleDelivery is a consumer Handler that mails booking.created events.
func (m *Mailer) HandleDelivery(ctx context.Context, routingKey string, body []byte) error {
	if routingKey != RKBookingCreated {
		return nil
	}
	ev, err := DecodeEvent(body)
	if err != nil {
		return err
	}
	return m.Notify(ctx, ev)
}
