package rtoOfficeValidator

import (
	"vahan/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "Failed on '" + fe.Tag() + "' validation!"
		}
	} else {
		errors["request"] = "Invalid request data!"
	}
	return errors
}

// Create validates a new RTO office
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name" validate:"required"`
			Code     string `json:"code" validate:"required,alphanum"`
			State    string `json:"state" validate:"required"`
			District string `json:"district" validate:"required"`
			Address  string `json:"address"`
			Phone    string `json:"phone"`
			Email    string `json:"email" validate:"omitempty,email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedOffice", reqData)
		return c.Next()
	}
}

// Update validates the editable office fields
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Address string `json:"address"`
			Phone   string `json:"phone"`
			Email   string `json:"email" validate:"omitempty,email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedOfficeUpdate", reqData)
		return c.Next()
	}
}
