package utils

import (
	"finacademy/config"
	"finacademy/database"
	"finacademy/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// PurgeStaleAnonymousCarts deletes anonymous cart rows older than the
// configured TTL. User-owned carts are kept; only session-scoped ones go
// stale when the browser never comes back.
func PurgeStaleAnonymousCarts() {
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.CartTTLDays)

	res := database.Database.Db.
		Where("user_id = 0 AND created_at < ?", cutoff).
		Delete(&models.CartItem{})
	if res.Error != nil {
		log.Printf("[CART-JANITOR] purge failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CART-JANITOR] purged %d stale anonymous cart items", res.RowsAffected)
	}
}

// InitializeCartJanitor schedules the daily purge and returns the running cron.
func InitializeCartJanitor() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@daily", PurgeStaleAnonymousCarts); err != nil {
		log.Fatalf("Failed to schedule cart janitor: %v", err)
	}
	c.Start()

	log.Println("Cart janitor scheduled (daily).")
	return c
}
