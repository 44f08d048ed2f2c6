// Package notifier delivers generated calendars by email.
package notifier

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thermavillage/revcal/internal/calendar"
	"github.com/thermavillage/revcal/internal/config"
	"github.com/thermavillage/revcal/internal/export"
	"github.com/thermavillage/revcal/internal/notifier/providers"
)

// Sender defines the interface for email sending.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// Notifier handles sending calendar deliveries.
type Notifier struct {
	sender Sender
	to     []string
}

// New creates a notifier with the given sender and recipients.
func New(sender Sender, to []string) *Notifier {
	return &Notifier{sender: sender, to: to}
}

// NewFromConfig creates a notifier based on configuration.
func NewFromConfig(cfg config.EmailConfig) (*Notifier, error) {
	var sender Sender

	switch cfg.Provider {
	case "smtp":
		sender = providers.NewSMTPSender(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
			cfg.FromAddr,
		)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Provider)
	}

	if len(cfg.ToAddrs) == 0 {
		return nil, fmt.Errorf("no delivery recipients configured")
	}

	return New(sender, cfg.ToAddrs), nil
}

// SendCalendar renders the document and sends it to every recipient.
// Recipients are sent concurrently; the first failure cancels the rest.
func (n *Notifier) SendCalendar(ctx context.Context, doc calendar.Document) error {
	subject := fmt.Sprintf("%s %d Content Calendar", doc.Summary.Month, doc.Summary.Year)
	plainBody := export.DocumentText(doc)
	htmlBody, err := export.DocumentHTML(doc)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for _, to := range n.to {
		g.Go(func() error {
			if err := n.sender.Send(to, subject, htmlBody, plainBody); err != nil {
				return fmt.Errorf("failed to deliver to %s: %w", to, err)
			}
			return nil
		})
	}
	return g.Wait()
}
