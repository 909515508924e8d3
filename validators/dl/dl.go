package dlValidator

import (
	"strings"
	"time"

	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

var licenseTypes = map[string]bool{
	"LMV":  true,
	"HMV":  true,
	"MCWG": true,
}

// Apply validates a new DL application
func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RtoOfficeID uint   `json:"rtoOfficeId"`
			LicenseType string `json:"licenseType"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RtoOfficeID == 0 {
			errors["rtoOfficeId"] = "RTO office is required!"
		}
		if reqData.LicenseType != "" && !licenseTypes[reqData.LicenseType] {
			errors["licenseType"] = "License type must be LMV, HMV or MCWG!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDlApply", reqData)
		return c.Next()
	}
}

// ScheduleTest validates the driving test date
func ScheduleTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TestDate time.Time `json:"testDate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TestDate.IsZero() {
			errors["testDate"] = "Test date is required!"
		} else if reqData.TestDate.Before(time.Now()) {
			errors["testDate"] = "Test date must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScheduleTest", reqData)
		return c.Next()
	}
}

// TestResult validates the PASS/FAIL outcome
func TestResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Result string `json:"result"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Result != models.TestResultPass && reqData.Result != models.TestResultFail {
			errors["result"] = "Result must be PASS or FAIL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestResult", reqData)
		return c.Next()
	}
}

// Reject validates the rejection reason
func Reject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Rejection reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReject", reqData)
		return c.Next()
	}
}
