package controllers

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

// Mailer is wired in main (Resend in production); tests swap in a stub.
var Mailer utils.EmailSender

var mailLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "mailer").Logger()

// sendMail is one leg of a notification fan-out. Each leg carries its own
// error boundary: a failed or unconfigured send is logged and reported to
// the caller as a bool, never as a request failure.
func sendMail(to []string, subject, html, kind string) bool {
	if Mailer == nil {
		mailLog.Warn().Str("kind", kind).Msg("mailer not configured, skipping send")
		return false
	}
	if err := Mailer.Send(to, subject, html); err != nil {
		mailLog.Error().Err(err).Str("kind", kind).Strs("to", to).Msg("email send failed")
		return false
	}
	mailLog.Info().Str("kind", kind).Strs("to", to).Msg("email sent")
	return true
}
