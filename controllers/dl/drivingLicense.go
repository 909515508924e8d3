package dlController

import (
	"time"

	"vahan/config"
	"vahan/database"
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyLicenses returns the logged-in citizen's licenses
func GetMyLicenses(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var licenses []models.DrivingLicense
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("created_at DESC").Find(&licenses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch licenses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "My licenses.", fiber.Map{"licenses": licenses})
}

// GetLicenseByNumber looks a license up by its DL number
func GetLicenseByNumber(c *fiber.Ctx) error {
	dlNumber := c.Params("dlNumber")

	var license models.DrivingLicense
	if err := database.Database.Db.Where("dl_number = ?", dlNumber).First(&license).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "License not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "License fetched.", fiber.Map{"license": license})
}

// RenewLicense renews the caller's own license with a fresh validity period.
// Revoked licenses cannot be renewed.
func RenewLicense(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	dlNumber := c.Params("dlNumber")

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.DrivingLicense{}).
		Where("dl_number = ? AND user_id = ? AND status IN ?",
			dlNumber, userId, []string{models.DlStatusActive, models.DlStatusExpired}).
		Updates(map[string]interface{}{
			"status":     models.DlStatusActive,
			"issued_at":  now,
			"expires_at": now.AddDate(config.AppConfig.DlValidityYears, 0, 0),
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to renew license!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "License not found or invalid state!", nil)
	}

	var license models.DrivingLicense
	db.Where("dl_number = ?", dlNumber).First(&license)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "License renewed.", fiber.Map{"license": license})
}
