package utils

import (
	"log"

	"vahan/config"
	"vahan/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// NotifyUser records a notification for the user. Best effort: the caller's
// primary mutation has already committed, so failures are logged and not
// propagated.
func NotifyUser(db *gorm.DB, userID uint, message string) {
	notification := models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
		return
	}

	// Forward over SMS when a gateway is configured, also best effort.
	if config.AppConfig.SmsGatewayURL != "" {
		go sendSms(db, userID, message)
	}
}

// sendSms pushes the notification text to the configured SMS gateway.
func sendSms(db *gorm.DB, userID uint, message string) {
	var user models.User
	if err := db.Select("phone").First(&user, userID).Error; err != nil || user.Phone == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", config.AppConfig.SmsGatewayKey).
		SetFormData(map[string]string{
			"to":      user.Phone,
			"message": message,
		}).
		Post(config.AppConfig.SmsGatewayURL)
	if err != nil {
		log.Printf("Error while sending SMS: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Failed to send SMS, response code: %d", resp.StatusCode())
	}
}
