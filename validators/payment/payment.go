package paymentValidator

import (
	"vahan/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator.ValidationErrors into the usual error map.
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

// Initiate validates a new payment request
func Initiate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount      float64 `json:"amount" validate:"required,gt=0"`
			PaymentType string  `json:"paymentType" validate:"required,oneof=CHALLAN DL_APPLICATION VEHICLE_REGISTRATION OTHER"`
			ChallanID   *uint   `json:"challanId"`
			ReferenceID *uint   `json:"referenceId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedInitiate", reqData)
		return c.Next()
	}
}

// Verify validates the gateway confirmation details
func Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TransactionID string `json:"transactionId" validate:"required"`
			PaymentMethod string `json:"paymentMethod" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

// Refund validates the refund reason
func Refund() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedRefund", reqData)
		return c.Next()
	}
}
