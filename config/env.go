package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env in development. Hosted environments inject real env
// vars, so a missing file is not an error there.
func LoadEnv() {
	if os.Getenv("RENDER") == "" && os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// MailSettings carries the notification fan-out configuration.
type MailSettings struct {
	APIKey     string
	From       string
	AdminEmail string   // primary operational address
	CCEmails   []string // secondary administrative addresses, raw (deduped by the mailer)
}

func Mail() MailSettings {
	cc := []string{}
	for _, addr := range strings.Split(os.Getenv("ADMIN_CC_EMAILS"), ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			cc = append(cc, addr)
		}
	}
	return MailSettings{
		APIKey:     os.Getenv("RESEND_API_KEY"),
		From:       getEnv("MAIL_FROM", "Sharothee Wedding <noreply@sharothee.wedding>"),
		AdminEmail: getEnv("ADMIN_EMAIL", "hello@sharothee.wedding"),
		CCEmails:   cc,
	}
}
