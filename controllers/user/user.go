package userController

import (
	"vahan/database"
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the logged-in user's profile
func GetProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched.", fiber.Map{"user": user})
}

// UpdateProfile updates the logged-in user's own fields
func UpdateProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedUpdateProfile").(*struct {
		Name          string `json:"name"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		AadhaarNumber string `json:"aadhaarNumber"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != "" {
		updates["name"] = reqData.Name
	}
	if reqData.Phone != "" {
		updates["phone"] = reqData.Phone
	}
	if reqData.Address != "" {
		updates["address"] = reqData.Address
	}
	if reqData.AadhaarNumber != "" {
		updates["aadhaar_number"] = reqData.AadhaarNumber
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated.", fiber.Map{"user": user})
}

// ListUsers returns every non-deleted user (SUPER_ADMIN only)
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var users []models.User
	var total int64

	db.Model(&models.User{}).Where("is_deleted = false").Count(&total)

	if err := db.Where("is_deleted = false").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetUser returns a user by id (admin)
func GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched.", fiber.Map{"user": user})
}

// UpdateUserStatus changes a user's account status (admin)
func UpdateUserStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedUserStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	res := db.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", id).
		Update("status", reqData.Status)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var user models.User
	db.First(&user, id)
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated.", fiber.Map{"user": user})
}

// RemoveUser soft-deletes a user (SUPER_ADMIN only)
func RemoveUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	res := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User disabled successfully.", nil)
}

// AssignRole assigns a role (and optionally a home office) to a user
func AssignRole(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignRole").(*struct {
		UserID      uint   `json:"userId"`
		Role        string `json:"role"`
		RtoOfficeID *uint  `json:"rtoOfficeId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	updates := map[string]interface{}{"role": reqData.Role}
	if reqData.RtoOfficeID != nil {
		updates["rto_office_id"] = *reqData.RtoOfficeID
	}

	res := db.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", reqData.UserID).
		Updates(updates)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign role!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var user models.User
	db.First(&user, reqData.UserID)
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role assigned successfully.", fiber.Map{"user": user})
}
