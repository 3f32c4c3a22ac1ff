package utils

import (
	"errors"
	"strings"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the single seam between the workflows and the email
// provider. Handlers treat every Send as best-effort: failures are logged
// by the caller and never surfaced to the guest.
type EmailSender interface {
	Send(to []string, subject, html string) error
}

// ResendMailer delivers through the Resend HTTP API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Send(to []string, subject, html string) error {
	if len(to) == 0 {
		return errors.New("no recipients")
	}
	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	return err
}

// DedupeAddresses removes repeated addresses, case-insensitively, keeping
// first-seen order. Used to build the secondary administrative list.
func DedupeAddresses(addrs []string) []string {
	seen := make(map[string]bool, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}
