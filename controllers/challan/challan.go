package challanController

import (
	"fmt"

	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	"vahan/utils"

	"github.com/gofiber/fiber/v2"
)

// IssueChallan creates an UNPAID challan against a vehicle and notifies the
// owner (police only).
func IssueChallan(c *fiber.Ctx) error {
	issuedBy := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedChallan").(*struct {
		VehicleID     uint    `json:"vehicleId"`
		ViolationType string  `json:"violationType"`
		Amount        float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var vehicle models.Vehicle
	if err := db.First(&vehicle, reqData.VehicleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}

	challan := models.Challan{
		VehicleID:     reqData.VehicleID,
		IssuedBy:      issuedBy,
		ViolationType: reqData.ViolationType,
		Amount:        reqData.Amount,
		Status:        models.ChallanStatusUnpaid,
	}

	if err := db.Create(&challan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue challan!", nil)
	}

	utils.NotifyUser(db, vehicle.OwnerID,
		fmt.Sprintf("A challan of ₹%v has been issued for violation: %s", reqData.Amount, reqData.ViolationType))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Challan issued.", fiber.Map{"challan": challan})
}

// ListChallans returns all challans (admin/police)
func ListChallans(c *fiber.Ctx) error {
	var challans []models.Challan
	if err := database.Database.Db.Order("created_at DESC").Find(&challans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch challans!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challan list.", fiber.Map{"challans": challans})
}

// GetMyChallans returns challans on the logged-in citizen's vehicles
func GetMyChallans(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var challans []models.Challan
	if err := database.Database.Db.
		Joins("JOIN vehicles ON vehicles.id = challans.vehicle_id").
		Where("vehicles.owner_id = ?", userId).
		Order("challans.created_at DESC").
		Find(&challans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch challans!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "My challans.", fiber.Map{"challans": challans})
}

// GetVehicleChallans returns the challans issued against one vehicle
func GetVehicleChallans(c *fiber.Ctx) error {
	vehicleId, err := c.ParamsInt("vehicleId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	var challans []models.Challan
	if err := database.Database.Db.Where("vehicle_id = ?", vehicleId).
		Order("created_at DESC").Find(&challans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch challans!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle challans.", fiber.Map{"challans": challans})
}

// GetChallan returns a challan by id
func GetChallan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid challan id!", nil)
	}

	var challan models.Challan
	if err := database.Database.Db.First(&challan, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challan fetched.", fiber.Map{"challan": challan})
}

// DisputeChallan moves UNPAID -> DISPUTED with a reason. The caller must own
// the vehicle the challan was issued against.
func DisputeChallan(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid challan id!", nil)
	}

	reqData, ok := c.Locals("validatedDispute").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var challan models.Challan
	if err := db.First(&challan, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found or cannot be disputed!", nil)
	}

	var vehicle models.Vehicle
	if err := db.First(&vehicle, challan.VehicleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to dispute challan!", nil)
	}
	if vehicle.OwnerID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to dispute this challan!", nil)
	}

	res := db.Model(&models.Challan{}).
		Where("id = ? AND status = ?", id, models.ChallanStatusUnpaid).
		Updates(map[string]interface{}{
			"status":         models.ChallanStatusDisputed,
			"dispute_reason": reqData.Reason,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to dispute challan!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found or cannot be disputed!", nil)
	}

	db.First(&challan, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challan disputed.", fiber.Map{"challan": challan})
}

// ResolveDispute moves DISPUTED -> UNPAID or DISPUTED -> CANCELLED and
// notifies the vehicle owner with the resolution text.
func ResolveDispute(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid challan id!", nil)
	}

	reqData, ok := c.Locals("validatedResolve").(*struct {
		Resolution string `json:"resolution"`
		NewStatus  string `json:"newStatus"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	res := db.Model(&models.Challan{}).
		Where("id = ? AND status = ?", id, models.ChallanStatusDisputed).
		Updates(map[string]interface{}{
			"status":              reqData.NewStatus,
			"dispute_resolved_by": adminId,
			"dispute_resolution":  reqData.Resolution,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve dispute!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challan not found or not in disputed status!", nil)
	}

	var challan models.Challan
	db.First(&challan, id)

	var vehicle models.Vehicle
	if err := db.First(&vehicle, challan.VehicleID).Error; err == nil {
		utils.NotifyUser(db, vehicle.OwnerID,
			fmt.Sprintf("Your challan dispute has been resolved: %s", reqData.Resolution))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dispute resolved.", fiber.Map{"challan": challan})
}
