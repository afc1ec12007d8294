// Package mailer sends best-effort email notifications. Sends are
// fire-and-forget: failures are logged and never surface to the caller.
package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/foodshare-app/foodshare_backend/models"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type smtpConfig struct {
	host string
	port int
	user string
	pass string
	from string
}

func loadConfig() (smtpConfig, bool) {
	cfg := smtpConfig{
		host: os.Getenv("SMTP_HOST"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASS"),
		from: os.Getenv("MAIL_FROM"),
	}
	if cfg.host == "" {
		return cfg, false
	}

	cfg.port = 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.port = port
		}
	}
	if cfg.from == "" {
		cfg.from = cfg.user
	}
	return cfg, true
}

// NotifyNewListing emails every registered receiver about a newly created
// listing. Intended to run in its own goroutine; it never returns an error
// to the create path.
func NotifyNewListing(db *gorm.DB, listing models.FoodListing) {
	cfg, ok := loadConfig()
	if !ok {
		log.Println("Mailer not configured, skipping new listing notification")
		return
	}

	var receivers []models.User
	if err := db.Where("role = ?", models.RoleReceiver).Find(&receivers).Error; err != nil {
		log.Printf("Failed to look up receivers for notification: %v", err)
		return
	}

	if len(receivers) == 0 {
		log.Println("No receivers found for email notification")
		return
	}

	emails := make([]string, 0, len(receivers))
	for _, user := range receivers {
		emails = append(emails, user.Email)
	}

	body := fmt.Sprintf(
		"New food listing is available!\n\nFood: %s\nQuantity: %d\nPickup Address: %s\n\nLog in to FoodShare and request food now.",
		listing.FoodItemName, listing.Quantity, listing.PickupAddress,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.from)
	msg.SetHeader("Bcc", emails...)
	msg.SetHeader("Subject", "New Food Available on FoodShare!")
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(cfg.host, cfg.port, cfg.user, cfg.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Email sending failed: %v", err)
		return
	}

	log.Printf("New listing notification sent to %d receivers", len(emails))
}
