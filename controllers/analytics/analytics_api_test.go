package analyticsController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vahan/config"
	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	analyticsRoutes "vahan/routers/analyticsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, DlValidityYears: 20}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	analyticsRoutes.SetupAnalyticsRoutes(app)
	return app, db
}

func doGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func auditorToken(t *testing.T, db *gorm.DB) string {
	t.Helper()
	user := models.User{Name: "Auditor", Email: "auditor@example.com", Password: "x", Role: models.RoleAuditor, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func TestDashboardCounts(t *testing.T) {
	app, db := setupApp(t)
	token := auditorToken(t, db)

	citizen := models.User{Name: "Citizen", Email: "citizen@example.com", Password: "x", Role: models.RoleCitizen, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&citizen).Error)

	vehicle := models.Vehicle{OwnerID: citizen.ID, VehicleType: "TWO_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: 1, Status: models.VehicleStatusApproved}
	require.NoError(t, db.Create(&vehicle).Error)

	require.NoError(t, db.Create(&models.Challan{VehicleID: vehicle.ID, IssuedBy: 1, ViolationType: "SPEEDING", Amount: 500, Status: models.ChallanStatusUnpaid}).Error)

	now := time.Now()
	require.NoError(t, db.Create(&models.Payment{UserID: citizen.ID, Amount: 350, PaymentType: models.PaymentTypeChallan, Status: models.PaymentStatusSuccess, PaidAt: &now}).Error)
	require.NoError(t, db.Create(&models.Payment{UserID: citizen.ID, Amount: 9999, PaymentType: models.PaymentTypeOther, Status: models.PaymentStatusPending}).Error)

	resp := doGet(t, app, "/analytics/dashboard", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			TotalUsers    int64   `json:"totalUsers"`
			TotalVehicles int64   `json:"totalVehicles"`
			TotalChallans int64   `json:"totalChallans"`
			TotalRevenue  float64 `json:"totalRevenue"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Data.TotalUsers)
	assert.Equal(t, int64(1), body.Data.TotalVehicles)
	assert.Equal(t, int64(1), body.Data.TotalChallans)
	// Pending payments do not count as revenue
	assert.Equal(t, float64(350), body.Data.TotalRevenue)
}

func TestViolationBreakdown(t *testing.T) {
	app, db := setupApp(t)
	token := auditorToken(t, db)

	citizen := models.User{Name: "Citizen", Email: "citizen@example.com", Password: "x", Role: models.RoleCitizen, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&citizen).Error)
	vehicle := models.Vehicle{OwnerID: citizen.ID, VehicleType: "TWO_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: 1, Status: models.VehicleStatusApproved}
	require.NoError(t, db.Create(&vehicle).Error)

	require.NoError(t, db.Create(&models.Challan{VehicleID: vehicle.ID, IssuedBy: 1, ViolationType: "SPEEDING", Amount: 500, Status: models.ChallanStatusUnpaid}).Error)
	require.NoError(t, db.Create(&models.Challan{VehicleID: vehicle.ID, IssuedBy: 1, ViolationType: "SPEEDING", Amount: 500, Status: models.ChallanStatusPaid}).Error)
	require.NoError(t, db.Create(&models.Challan{VehicleID: vehicle.ID, IssuedBy: 1, ViolationType: "NO_HELMET", Amount: 200, Status: models.ChallanStatusDisputed}).Error)

	resp := doGet(t, app, "/analytics/violations", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Violations []struct {
				ViolationType string  `json:"violationType"`
				Count         int     `json:"count"`
				TotalAmount   float64 `json:"totalAmount"`
				PaidCount     int     `json:"paidCount"`
				UnpaidCount   int     `json:"unpaidCount"`
			} `json:"violations"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Violations, 2)

	speeding := body.Data.Violations[0]
	assert.Equal(t, "SPEEDING", speeding.ViolationType)
	assert.Equal(t, 2, speeding.Count)
	assert.Equal(t, float64(1000), speeding.TotalAmount)
	assert.Equal(t, 1, speeding.PaidCount)
	assert.Equal(t, 1, speeding.UnpaidCount)
}

func TestAnalyticsForbiddenForCitizens(t *testing.T) {
	app, db := setupApp(t)

	citizen := models.User{Name: "Citizen", Email: "citizen@example.com", Password: "x", Role: models.RoleCitizen, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&citizen).Error)
	token, err := middleware.GenerateJWT(citizen.ID, citizen.Name, citizen.Role, citizen.Email)
	require.NoError(t, err)

	resp := doGet(t, app, "/analytics/dashboard", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doGet(t, app, "/analytics/ml-risk", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
