package vehicleController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vahan/config"
	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	vehicleRoutes "vahan/routers/vehicleRoutes"

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
	vehicleRoutes.SetupVehicleRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "x", Role: role, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func createOffice(t *testing.T, db *gorm.DB) models.RtoOffice {
	t.Helper()
	office := models.RtoOffice{Name: "Mumbai Central RTO", Code: "MH01", State: "Maharashtra", District: "Mumbai", Status: models.OfficeStatusActive}
	require.NoError(t, db.Create(&office).Error)
	return office
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestVehicleRegistrationLifecycle(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	_, citizenToken := createUser(t, db, "owner@example.com", models.RoleCitizen)
	_, officerToken := createUser(t, db, "officer@example.com", models.RoleRtoOfficer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleRtoAdmin)

	resp := doRequest(t, app, "POST", "/vehicles/register", citizenToken, fiber.Map{
		"vehicleType":   "FOUR_WHEELER",
		"make":          "Maruti",
		"model":         "Swift",
		"year":          2022,
		"color":         "White",
		"engineNumber":  "ENG-123",
		"chassisNumber": "CHS-456",
		"rtoOfficeId":   office.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var vehicle models.Vehicle
	require.NoError(t, db.First(&vehicle).Error)
	assert.Equal(t, models.VehicleStatusPending, vehicle.Status)
	assert.Nil(t, vehicle.RegistrationNumber)

	resp = doRequest(t, app, "PUT", "/vehicles/1/verify", officerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, models.VehicleStatusVerified, vehicle.Status)
	assert.NotNil(t, vehicle.VerifiedBy)

	// A second verify finds no row in PENDING
	resp = doRequest(t, app, "PUT", "/vehicles/1/verify", officerToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, "PUT", "/vehicles/1/approve", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, models.VehicleStatusApproved, vehicle.Status)
	require.NotNil(t, vehicle.RegistrationNumber)
	assert.True(t, strings.HasPrefix(*vehicle.RegistrationNumber, "MH01-"))

	resp = doRequest(t, app, "PUT", "/vehicles/1/scrap", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, models.VehicleStatusScrapped, vehicle.Status)
}

func TestApproveRequiresVerifiedState(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	owner, _ := createUser(t, db, "owner@example.com", models.RoleCitizen)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleRtoAdmin)

	vehicle := models.Vehicle{OwnerID: owner.ID, VehicleType: "TWO_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: office.ID, Status: models.VehicleStatusPending}
	require.NoError(t, db.Create(&vehicle).Error)

	resp := doRequest(t, app, "PUT", "/vehicles/1/approve", adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, models.VehicleStatusPending, vehicle.Status)
	assert.Nil(t, vehicle.RegistrationNumber)
}

func TestRejectVehicleRecordsReason(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	owner, _ := createUser(t, db, "owner@example.com", models.RoleCitizen)
	_, officerToken := createUser(t, db, "officer@example.com", models.RoleRtoOfficer)

	vehicle := models.Vehicle{OwnerID: owner.ID, VehicleType: "TWO_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: office.ID, Status: models.VehicleStatusPending}
	require.NoError(t, db.Create(&vehicle).Error)

	resp := doRequest(t, app, "PUT", "/vehicles/1/reject", officerToken, fiber.Map{"reason": "Chassis number mismatch"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, models.VehicleStatusRejected, vehicle.Status)
	assert.Equal(t, "Chassis number mismatch", vehicle.RejectedReason)

	var notification models.Notification
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&notification).Error)
	assert.Contains(t, notification.Message, "Chassis number mismatch")
}

func TestTransferRequiresOwnership(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	owner, _ := createUser(t, db, "owner@example.com", models.RoleCitizen)
	_, strangerToken := createUser(t, db, "stranger@example.com", models.RoleCitizen)
	newOwner, _ := createUser(t, db, "buyer@example.com", models.RoleCitizen)

	regNumber := "MH01-AAAA1111"
	vehicle := models.Vehicle{OwnerID: owner.ID, RegistrationNumber: &regNumber, VehicleType: "FOUR_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: office.ID, Status: models.VehicleStatusApproved}
	require.NoError(t, db.Create(&vehicle).Error)

	resp := doRequest(t, app, "POST", "/vehicles/1/transfer", strangerToken, fiber.Map{"newOwnerEmail": newOwner.Email})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, owner.ID, vehicle.OwnerID)
}

func TestTransferMovesOwnership(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	owner, ownerToken := createUser(t, db, "owner@example.com", models.RoleCitizen)
	newOwner, _ := createUser(t, db, "buyer@example.com", models.RoleCitizen)

	regNumber := "MH01-BBBB2222"
	vehicle := models.Vehicle{OwnerID: owner.ID, RegistrationNumber: &regNumber, VehicleType: "FOUR_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: office.ID, Status: models.VehicleStatusApproved}
	require.NoError(t, db.Create(&vehicle).Error)

	resp := doRequest(t, app, "POST", "/vehicles/1/transfer", ownerToken, fiber.Map{"newOwnerEmail": newOwner.Email})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&vehicle, 1).Error)
	assert.Equal(t, newOwner.ID, vehicle.OwnerID)

	var notification models.Notification
	require.NoError(t, db.Where("user_id = ?", newOwner.ID).First(&notification).Error)
	assert.Contains(t, notification.Message, regNumber)
}

func TestVerifyRequiresOfficerRole(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	owner, citizenToken := createUser(t, db, "owner@example.com", models.RoleCitizen)

	vehicle := models.Vehicle{OwnerID: owner.ID, VehicleType: "TWO_WHEELER", EngineNumber: "E1", ChassisNumber: "C1", RtoOfficeID: office.ID, Status: models.VehicleStatusPending}
	require.NoError(t, db.Create(&vehicle).Error)

	resp := doRequest(t, app, "PUT", "/vehicles/1/verify", citizenToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRegisterRejectsInactiveOffice(t *testing.T) {
	app, db := setupApp(t)
	office := models.RtoOffice{Name: "Closed RTO", Code: "MH99", State: "Maharashtra", District: "Pune", Status: models.OfficeStatusInactive}
	require.NoError(t, db.Create(&office).Error)
	_, citizenToken := createUser(t, db, "owner@example.com", models.RoleCitizen)

	resp := doRequest(t, app, "POST", "/vehicles/register", citizenToken, fiber.Map{
		"vehicleType":   "TWO_WHEELER",
		"year":          2020,
		"engineNumber":  "ENG-1",
		"chassisNumber": "CHS-1",
		"rtoOfficeId":   office.ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["status"])
}
