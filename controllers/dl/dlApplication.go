package dlController

import (
	"fmt"
	"time"

	"vahan/config"
	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	"vahan/utils"

	"github.com/gofiber/fiber/v2"
)

// ApplyForDl creates a PENDING application for the logged-in citizen.
func ApplyForDl(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDlApply").(*struct {
		RtoOfficeID uint   `json:"rtoOfficeId"`
		LicenseType string `json:"licenseType"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var office models.RtoOffice
	if err := db.Where("id = ? AND status = ?", reqData.RtoOfficeID, models.OfficeStatusActive).First(&office).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "RTO office not found or inactive!", nil)
	}

	licenseType := reqData.LicenseType
	if licenseType == "" {
		licenseType = models.DefaultLicenseType
	}

	application := models.DlApplication{
		UserID:      userId,
		RtoOfficeID: reqData.RtoOfficeID,
		LicenseType: licenseType,
		Status:      models.DlAppStatusPending,
	}

	if err := db.Create(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit DL application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "DL application submitted.", fiber.Map{"application": application})
}

// ListApplications returns all applications (admin/officer)
func ListApplications(c *fiber.Ctx) error {
	var applications []models.DlApplication
	if err := database.Database.Db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch DL applications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "DL applications.", fiber.Map{"applications": applications})
}

// GetMyApplications returns the logged-in citizen's applications
func GetMyApplications(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var applications []models.DlApplication
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("created_at DESC").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch DL applications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "My DL applications.", fiber.Map{"applications": applications})
}

// GetApplication returns an application by id
func GetApplication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	var application models.DlApplication
	if err := database.Database.Db.First(&application, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application fetched.", fiber.Map{"application": application})
}

// VerifyDocuments moves PENDING -> VERIFIED and notifies the applicant.
func VerifyDocuments(c *fiber.Ctx) error {
	officerId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.DlApplication{}).
		Where("id = ? AND status = ?", id, models.DlAppStatusPending).
		Updates(map[string]interface{}{
			"status":      models.DlAppStatusVerified,
			"verified_by": officerId,
			"verified_at": now,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify documents!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found or invalid state!", nil)
	}

	var application models.DlApplication
	db.First(&application, id)

	utils.NotifyUser(db, application.UserID, "Your DL application documents have been verified")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents verified.", fiber.Map{"application": application})
}

// ScheduleTest moves VERIFIED -> TEST_SCHEDULED with a future test date.
func ScheduleTest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	reqData, ok := c.Locals("validatedScheduleTest").(*struct {
		TestDate time.Time `json:"testDate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	res := db.Model(&models.DlApplication{}).
		Where("id = ? AND status = ?", id, models.DlAppStatusVerified).
		Updates(map[string]interface{}{
			"status":            models.DlAppStatusTestScheduled,
			"test_scheduled_at": reqData.TestDate,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule test!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found or invalid state!", nil)
	}

	var application models.DlApplication
	db.First(&application, id)

	utils.NotifyUser(db, application.UserID,
		fmt.Sprintf("Your driving test has been scheduled for %s", reqData.TestDate.Format(time.RFC1123)))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test scheduled.", fiber.Map{"application": application})
}

// RecordTestResult moves TEST_SCHEDULED -> TEST_PASSED or TEST_FAILED.
func RecordTestResult(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	reqData, ok := c.Locals("validatedTestResult").(*struct {
		Result string `json:"result"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newStatus := models.DlAppStatusTestFailed
	if reqData.Result == models.TestResultPass {
		newStatus = models.DlAppStatusTestPassed
	}

	db := database.Database.Db

	res := db.Model(&models.DlApplication{}).
		Where("id = ? AND status = ?", id, models.DlAppStatusTestScheduled).
		Updates(map[string]interface{}{
			"status":      newStatus,
			"test_result": reqData.Result,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record test result!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found or invalid state!", nil)
	}

	var application models.DlApplication
	db.First(&application, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test result recorded.", fiber.Map{"application": application})
}

// ApproveApplication moves TEST_PASSED -> APPROVED and issues the license.
func ApproveApplication(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.DlApplication{}).
		Where("id = ? AND status = ?", id, models.DlAppStatusTestPassed).
		Updates(map[string]interface{}{
			"status":      models.DlAppStatusApproved,
			"approved_by": adminId,
			"approved_at": now,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve application!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found or invalid state!", nil)
	}

	var application models.DlApplication
	db.First(&application, id)

	license := models.DrivingLicense{
		UserID:      application.UserID,
		DlNumber:    utils.GenerateDlNumber(),
		LicenseType: application.LicenseType,
		IssuedAt:    now,
		ExpiresAt:   now.AddDate(config.AppConfig.DlValidityYears, 0, 0),
		Status:      models.DlStatusActive,
	}
	if err := db.Create(&license).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue driving license!", nil)
	}

	utils.NotifyUser(db, application.UserID,
		fmt.Sprintf("Your DL application has been approved. License number: %s", license.DlNumber))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application approved, license issued.", fiber.Map{
		"application": application,
		"license":     license,
	})
}

// RejectApplication rejects an application from any non-terminal state.
func RejectApplication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	reqData, ok := c.Locals("validatedReject").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	nonTerminal := []string{
		models.DlAppStatusPending,
		models.DlAppStatusVerified,
		models.DlAppStatusTestScheduled,
		models.DlAppStatusTestPassed,
		models.DlAppStatusTestFailed,
	}

	res := db.Model(&models.DlApplication{}).
		Where("id = ? AND status IN ?", id, nonTerminal).
		Updates(map[string]interface{}{
			"status":          models.DlAppStatusRejected,
			"rejected_reason": reqData.Reason,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject application!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found or invalid state!", nil)
	}

	var application models.DlApplication
	db.First(&application, id)

	utils.NotifyUser(db, application.UserID,
		fmt.Sprintf("Your DL application was rejected: %s", reqData.Reason))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application rejected.", fiber.Map{"application": application})
}
