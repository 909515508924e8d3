package analyticsController

import (
	"math"

	"vahan/database"
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

// Risk level buckets
const (
	RiskLevelLow    = "LOW"
	RiskLevelMedium = "MEDIUM"
	RiskLevelHigh   = "HIGH"
)

// RiskAssessment is one row of the per-owner risk report.
type RiskAssessment struct {
	UserID         uint    `json:"userId"`
	TotalChallans  int     `json:"totalChallans"`
	UnpaidChallans int     `json:"unpaidChallans"`
	TotalViolation float64 `json:"totalViolationAmount"`
	RiskScore      int     `json:"riskScore"`
	RiskLevel      string  `json:"riskLevel"`
}

// ComputeRiskScore derives the heuristic 0-100 score from a vehicle owner's
// challan history: min(100, unpaid_ratio*100 + unpaid_count*10), rounded.
func ComputeRiskScore(totalChallans, unpaidChallans int) int {
	if totalChallans < 1 {
		totalChallans = 1
	}
	score := float64(unpaidChallans)/float64(totalChallans)*100 + float64(unpaidChallans)*10
	return int(math.Round(math.Min(100, score)))
}

// RiskLevelFor buckets a score: LOW <= 40 < MEDIUM <= 70 < HIGH.
func RiskLevelFor(score int) string {
	switch {
	case score > 70:
		return RiskLevelHigh
	case score > 40:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// GetDashboard returns the headline totals for the admin dashboard
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalVehicles, totalLicenses, totalChallans, pendingApplications int64
	var totalRevenue float64

	db.Model(&models.User{}).Where("is_deleted = false").Count(&totalUsers)
	db.Model(&models.Vehicle{}).Count(&totalVehicles)
	db.Model(&models.DrivingLicense{}).Count(&totalLicenses)
	db.Model(&models.Challan{}).Count(&totalChallans)
	db.Model(&models.DlApplication{}).
		Where("status IN ?", []string{
			models.DlAppStatusPending,
			models.DlAppStatusVerified,
			models.DlAppStatusTestScheduled,
		}).
		Count(&pendingApplications)
	db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats.", fiber.Map{
		"totalUsers":          totalUsers,
		"totalVehicles":       totalVehicles,
		"totalLicenses":       totalLicenses,
		"totalChallans":       totalChallans,
		"pendingApplications": pendingApplications,
		"totalRevenue":        totalRevenue,
	})
}

// GetRevenue returns the monthly revenue breakdown by payment type for the
// last 12 months of successful payments.
func GetRevenue(c *fiber.Ctx) error {
	db := database.Database.Db

	type revenueRow struct {
		Period         string  `json:"period"`
		ChallanRevenue float64 `json:"challanRevenue"`
		DlRevenue      float64 `json:"dlRevenue"`
		VehicleRevenue float64 `json:"vehicleRevenue"`
		TotalRevenue   float64 `json:"totalRevenue"`
	}

	var rows []revenueRow
	err := db.Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', paid_at), 'YYYY-MM') AS period,
			COALESCE(SUM(CASE WHEN payment_type = 'CHALLAN' THEN amount ELSE 0 END), 0) AS challan_revenue,
			COALESCE(SUM(CASE WHEN payment_type = 'DL_APPLICATION' THEN amount ELSE 0 END), 0) AS dl_revenue,
			COALESCE(SUM(CASE WHEN payment_type = 'VEHICLE_REGISTRATION' THEN amount ELSE 0 END), 0) AS vehicle_revenue,
			COALESCE(SUM(amount), 0) AS total_revenue
		FROM payments
		WHERE status = 'SUCCESS' AND paid_at IS NOT NULL
		GROUP BY DATE_TRUNC('month', paid_at)
		ORDER BY period DESC
		LIMIT 12
	`).Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch revenue analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revenue analytics.", fiber.Map{"revenue": rows})
}

// GetViolations returns the per-violation-type breakdown
func GetViolations(c *fiber.Ctx) error {
	db := database.Database.Db

	type violationRow struct {
		ViolationType string  `json:"violationType"`
		Count         int     `json:"count"`
		TotalAmount   float64 `json:"totalAmount"`
		PaidCount     int     `json:"paidCount"`
		UnpaidCount   int     `json:"unpaidCount"`
	}

	var rows []violationRow
	err := db.Model(&models.Challan{}).
		Select(`violation_type,
			COUNT(*) AS count,
			COALESCE(SUM(amount), 0) AS total_amount,
			COUNT(CASE WHEN status = 'PAID' THEN 1 END) AS paid_count,
			COUNT(CASE WHEN status IN ('UNPAID', 'DISPUTED') THEN 1 END) AS unpaid_count`).
		Group("violation_type").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch violation analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Violation analytics.", fiber.Map{"violations": rows})
}

// GetRiskAssessment scores vehicle owners by unpaid challans. DISPUTED
// challans count as unpaid until resolved.
func GetRiskAssessment(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}

	db := database.Database.Db

	type ownerRow struct {
		UserID         uint
		TotalChallans  int
		UnpaidChallans int
		TotalViolation float64
	}

	var owners []ownerRow
	err := db.Raw(`
		SELECT
			v.owner_id AS user_id,
			COUNT(c.id) AS total_challans,
			COUNT(CASE WHEN c.status IN ('UNPAID', 'DISPUTED') THEN 1 END) AS unpaid_challans,
			COALESCE(SUM(c.amount), 0) AS total_violation
		FROM vehicles v
		LEFT JOIN challans c ON c.vehicle_id = v.id
		GROUP BY v.owner_id
		HAVING COUNT(c.id) > 0
		ORDER BY COUNT(CASE WHEN c.status IN ('UNPAID', 'DISPUTED') THEN 1 END) DESC
		LIMIT ?
	`, limit).Scan(&owners).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch risk assessment!", nil)
	}

	assessments := make([]RiskAssessment, 0, len(owners))
	for _, o := range owners {
		score := ComputeRiskScore(o.TotalChallans, o.UnpaidChallans)
		assessments = append(assessments, RiskAssessment{
			UserID:         o.UserID,
			TotalChallans:  o.TotalChallans,
			UnpaidChallans: o.UnpaidChallans,
			TotalViolation: o.TotalViolation,
			RiskScore:      score,
			RiskLevel:      RiskLevelFor(score),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Risk assessment.", fiber.Map{"assessments": assessments})
}
