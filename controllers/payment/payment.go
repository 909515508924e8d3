package paymentController

import (
	"time"

	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	"vahan/utils"

	"github.com/gofiber/fiber/v2"
)

// InitiatePayment creates a PENDING payment for a challan or another payable
// reference. Settling the linked challan is a separate step; see PayChallan
// for the direct path.
func InitiatePayment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedInitiate").(*struct {
		Amount      float64 `json:"amount" validate:"required,gt=0"`
		PaymentType string  `json:"paymentType" validate:"required,oneof=CHALLAN DL_APPLICATION VEHICLE_REGISTRATION OTHER"`
		ChallanID   *uint   `json:"challanId"`
		ReferenceID *uint   `json:"referenceId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.ChallanID != nil {
		var challan models.Challan
		if err := db.First(&challan, *reqData.ChallanID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found!", nil)
		}
	}

	payment := models.Payment{
		UserID:      userId,
		Amount:      reqData.Amount,
		PaymentType: reqData.PaymentType,
		ChallanID:   reqData.ChallanID,
		ReferenceID: reqData.ReferenceID,
		Status:      models.PaymentStatusPending,
	}

	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to initiate payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment initiated.", fiber.Map{"payment": payment})
}

// VerifyPayment moves PENDING -> SUCCESS with the gateway transaction
// details. It does not touch the linked challan; the caller owns that
// consistency.
func VerifyPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	reqData, ok := c.Locals("validatedVerify").(*struct {
		TransactionID string `json:"transactionId" validate:"required"`
		PaymentMethod string `json:"paymentMethod" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":         models.PaymentStatusSuccess,
			"transaction_id": reqData.TransactionID,
			"payment_method": reqData.PaymentMethod,
			"paid_at":        now,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found or invalid state!", nil)
	}

	var payment models.Payment
	db.First(&payment, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified.", fiber.Map{"payment": payment})
}

// FailPayment moves PENDING -> FAILED.
func FailPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	db := database.Database.Db

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Update("status", models.PaymentStatusFailed)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found or invalid state!", nil)
	}

	var payment models.Payment
	db.First(&payment, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment marked as failed.", fiber.Map{"payment": payment})
}

// RefundPayment moves SUCCESS -> REFUNDED with a reason (admin only).
func RefundPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	reqData, ok := c.Locals("validatedRefund").(*struct {
		Reason string `json:"reason" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusSuccess).
		Updates(map[string]interface{}{
			"status":        models.PaymentStatusRefunded,
			"refund_reason": reqData.Reason,
			"refunded_at":   now,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refund payment!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found or invalid state!", nil)
	}

	var payment models.Payment
	db.First(&payment, id)

	utils.NotifyUser(db, payment.UserID, "Your payment has been refunded: "+reqData.Reason)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment refunded.", fiber.Map{"payment": payment})
}

// PayChallan is the legacy direct path: it settles the challan and records a
// SUCCESS payment in one request. The challan flip is the guarded step; the
// payment row follows it.
func PayChallan(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	challanId, err := c.ParamsInt("challanId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid challan id!", nil)
	}

	db := database.Database.Db

	var challan models.Challan
	if err := db.First(&challan, challanId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found or invalid state!", nil)
	}

	var vehicle models.Vehicle
	if err := db.First(&vehicle, challan.VehicleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to pay challan!", nil)
	}
	if vehicle.OwnerID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to pay this challan!", nil)
	}

	res := db.Model(&models.Challan{}).
		Where("id = ? AND status = ?", challanId, models.ChallanStatusUnpaid).
		Update("status", models.ChallanStatusPaid)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to pay challan!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found or invalid state!", nil)
	}

	now := time.Now()
	challanID := uint(challanId)
	payment := models.Payment{
		ChallanID:     &challanID,
		UserID:        userId,
		Amount:        challan.Amount,
		PaymentType:   models.PaymentTypeChallan,
		Status:        models.PaymentStatusSuccess,
		TransactionID: utils.GenerateTransactionID(),
		PaidAt:        &now,
	}
	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challan paid.", fiber.Map{"payment": payment})
}

// ListPayments returns all payments (admin/auditor)
func ListPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.Database.Db.Order("created_at DESC").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment list.", fiber.Map{"payments": payments})
}

// GetMyPayments returns the logged-in user's payment history
func GetMyPayments(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var payments []models.Payment
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("created_at DESC").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history.", fiber.Map{"payments": payments})
}

// GetPayment returns a payment by id
func GetPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.First(&payment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment fetched.", fiber.Map{"payment": payment})
}
