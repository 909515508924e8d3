package rtoOfficeController

import (
	"vahan/database"
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

// CreateOffice adds a new RTO office (SUPER_ADMIN only)
func CreateOffice(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOffice").(*struct {
		Name     string `json:"name" validate:"required"`
		Code     string `json:"code" validate:"required,alphanum"`
		State    string `json:"state" validate:"required"`
		District string `json:"district" validate:"required"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
		Email    string `json:"email" validate:"omitempty,email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Office codes are unique
	if err := db.Where("code = ?", reqData.Code).First(&models.RtoOffice{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Office code already exists!", nil)
	}

	office := models.RtoOffice{
		Name:     reqData.Name,
		Code:     reqData.Code,
		State:    reqData.State,
		District: reqData.District,
		Address:  reqData.Address,
		Phone:    reqData.Phone,
		Email:    reqData.Email,
		Status:   models.OfficeStatusActive,
	}

	if err := db.Create(&office).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create office!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "RTO office created.", fiber.Map{"office": office})
}

// ListOffices returns all ACTIVE offices
func ListOffices(c *fiber.Ctx) error {
	var offices []models.RtoOffice
	if err := database.Database.Db.Where("status = ?", models.OfficeStatusActive).
		Order("state, district").Find(&offices).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch offices!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "RTO offices.", fiber.Map{"offices": offices})
}

// GetOffice returns an office by id
func GetOffice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid office id!", nil)
	}

	var office models.RtoOffice
	if err := database.Database.Db.First(&office, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Office not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Office fetched.", fiber.Map{"office": office})
}

// UpdateOffice edits mutable office fields
func UpdateOffice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid office id!", nil)
	}

	reqData, ok := c.Locals("validatedOfficeUpdate").(*struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email" validate:"omitempty,email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var office models.RtoOffice
	if err := db.First(&office, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Office not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != "" {
		updates["name"] = reqData.Name
	}
	if reqData.Address != "" {
		updates["address"] = reqData.Address
	}
	if reqData.Phone != "" {
		updates["phone"] = reqData.Phone
	}
	if reqData.Email != "" {
		updates["email"] = reqData.Email
	}

	if len(updates) > 0 {
		if err := db.Model(&office).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update office!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Office updated.", fiber.Map{"office": office})
}

// RemoveOffice soft-deletes an office by flipping it to INACTIVE.
func RemoveOffice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid office id!", nil)
	}

	res := database.Database.Db.Model(&models.RtoOffice{}).
		Where("id = ? AND status = ?", id, models.OfficeStatusActive).
		Update("status", models.OfficeStatusInactive)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove office!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Office not found or invalid state!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Office deactivated.", nil)
}
