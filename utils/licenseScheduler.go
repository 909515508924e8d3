package utils

import (
	"log"
	"time"

	"vahan/database"
	"vahan/models"

	"github.com/robfig/cron/v3"
)

// StartLicenseScheduler runs the daily sweep that expires driving licenses
// past their expiry date. ACTIVE -> EXPIRED only; revoked licenses are left
// alone.
func StartLicenseScheduler() *cron.Cron {
	c := cron.New()

	// Daily at 00:30
	if _, err := c.AddFunc("30 0 * * *", ExpireLicenses); err != nil {
		log.Fatalf("Failed to schedule license expiry sweep: %v", err)
	}

	c.Start()
	log.Println("License expiry scheduler started")
	return c
}

// ExpireLicenses flips every ACTIVE license whose expiry date has passed.
func ExpireLicenses() {
	db := database.Database.Db

	result := db.Model(&models.DrivingLicense{}).
		Where("status = ? AND expires_at <= ?", models.DlStatusActive, time.Now()).
		Update("status", models.DlStatusExpired)
	if result.Error != nil {
		log.Printf("License expiry sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("License expiry sweep: %d licenses expired", result.RowsAffected)
	}
}
