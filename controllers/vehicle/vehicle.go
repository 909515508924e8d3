package vehicleController

import (
	"fmt"
	"time"

	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	"vahan/utils"

	"github.com/gofiber/fiber/v2"
)

// Conditional transitions below rely on the WHERE status clause: when two
// requests race on the same vehicle, the database lets exactly one through
// and the other sees zero rows affected. "Not found" and "wrong state" are
// deliberately reported the same way.

// RegisterVehicle creates a PENDING registration. The registration number
// stays nil until approval.
func RegisterVehicle(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedVehicle").(*struct {
		VehicleType   string `json:"vehicleType"`
		Make          string `json:"make"`
		Model         string `json:"model"`
		Year          int    `json:"year"`
		Color         string `json:"color"`
		EngineNumber  string `json:"engineNumber"`
		ChassisNumber string `json:"chassisNumber"`
		RtoOfficeID   uint   `json:"rtoOfficeId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var office models.RtoOffice
	if err := db.Where("id = ? AND status = ?", reqData.RtoOfficeID, models.OfficeStatusActive).First(&office).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "RTO office not found or inactive!", nil)
	}

	vehicle := models.Vehicle{
		OwnerID:       userId,
		VehicleType:   reqData.VehicleType,
		Make:          reqData.Make,
		VehicleModel:  reqData.Model,
		Year:          reqData.Year,
		Color:         reqData.Color,
		EngineNumber:  reqData.EngineNumber,
		ChassisNumber: reqData.ChassisNumber,
		RtoOfficeID:   reqData.RtoOfficeID,
		Status:        models.VehicleStatusPending,
	}

	if err := db.Create(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register vehicle!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Vehicle registration submitted.", fiber.Map{"vehicle": vehicle})
}

// ListVehicles returns all vehicles (admin)
func ListVehicles(c *fiber.Ctx) error {
	var vehicles []models.Vehicle
	if err := database.Database.Db.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch vehicles!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle list.", fiber.Map{"vehicles": vehicles})
}

// GetMyVehicles returns the logged-in citizen's vehicles
func GetMyVehicles(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var vehicles []models.Vehicle
	if err := database.Database.Db.Where("owner_id = ?", userId).
		Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch vehicles!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "My vehicles.", fiber.Map{"vehicles": vehicles})
}

// GetVehicle returns a vehicle by id
func GetVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.First(&vehicle, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle fetched.", fiber.Map{"vehicle": vehicle})
}

// VerifyVehicle moves PENDING -> VERIFIED and stamps the verifying officer.
func VerifyVehicle(c *fiber.Ctx) error {
	officerId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.Vehicle{}).
		Where("id = ? AND status = ?", id, models.VehicleStatusPending).
		Updates(map[string]interface{}{
			"status":      models.VehicleStatusVerified,
			"verified_by": officerId,
			"verified_at": now,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify vehicle!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found or invalid state!", nil)
	}

	var vehicle models.Vehicle
	db.First(&vehicle, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle documents verified.", fiber.Map{"vehicle": vehicle})
}

// ApproveVehicle moves VERIFIED -> APPROVED and assigns the final
// registration number in the same conditional update.
func ApproveVehicle(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	db := database.Database.Db

	var vehicle models.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found or invalid state!", nil)
	}

	var office models.RtoOffice
	if err := db.First(&office, vehicle.RtoOfficeID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve vehicle!", nil)
	}

	regNumber := utils.GenerateRegistrationNumber(office.Code)
	now := time.Now()

	res := db.Model(&models.Vehicle{}).
		Where("id = ? AND status = ?", id, models.VehicleStatusVerified).
		Updates(map[string]interface{}{
			"status":              models.VehicleStatusApproved,
			"registration_number": regNumber,
			"approved_by":         adminId,
			"approved_at":         now,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve vehicle!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found or invalid state!", nil)
	}

	db.First(&vehicle, id)

	utils.NotifyUser(db, vehicle.OwnerID,
		fmt.Sprintf("Your vehicle registration has been approved. Registration number: %s", regNumber))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle registration approved.", fiber.Map{"vehicle": vehicle})
}

// RejectVehicle rejects a registration that is still PENDING or VERIFIED.
func RejectVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	reqData, ok := c.Locals("validatedReject").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	res := db.Model(&models.Vehicle{}).
		Where("id = ? AND status IN ?", id, []string{models.VehicleStatusPending, models.VehicleStatusVerified}).
		Updates(map[string]interface{}{
			"status":          models.VehicleStatusRejected,
			"rejected_reason": reqData.Reason,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject vehicle!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found or invalid state!", nil)
	}

	var vehicle models.Vehicle
	db.First(&vehicle, id)

	utils.NotifyUser(db, vehicle.OwnerID,
		fmt.Sprintf("Your vehicle registration was rejected: %s", reqData.Reason))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle registration rejected.", fiber.Map{"vehicle": vehicle})
}

// ScrapVehicle moves APPROVED -> SCRAPPED. Terminal, no further transitions.
func ScrapVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	db := database.Database.Db

	res := db.Model(&models.Vehicle{}).
		Where("id = ? AND status = ?", id, models.VehicleStatusApproved).
		Update("status", models.VehicleStatusScrapped)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to scrap vehicle!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found or invalid state!", nil)
	}

	var vehicle models.Vehicle
	db.First(&vehicle, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle marked as scrapped.", fiber.Map{"vehicle": vehicle})
}

// TransferVehicle moves an APPROVED vehicle to a new owner found by email.
// Only the current owner may transfer.
func TransferVehicle(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	reqData, ok := c.Locals("validatedTransfer").(*struct {
		NewOwnerEmail string `json:"newOwnerEmail"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var vehicle models.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}

	if vehicle.OwnerID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to transfer this vehicle!", nil)
	}

	var newOwner models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.NewOwnerEmail).First(&newOwner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "New owner not found!", nil)
	}

	res := db.Model(&models.Vehicle{}).
		Where("id = ? AND status = ? AND owner_id = ?", id, models.VehicleStatusApproved, userId).
		Update("owner_id", newOwner.ID)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to transfer vehicle!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found or invalid state!", nil)
	}

	db.First(&vehicle, id)

	regNumber := ""
	if vehicle.RegistrationNumber != nil {
		regNumber = *vehicle.RegistrationNumber
	}
	utils.NotifyUser(db, newOwner.ID,
		fmt.Sprintf("Vehicle %s has been transferred to you.", regNumber))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle ownership transferred.", fiber.Map{"vehicle": vehicle})
}
