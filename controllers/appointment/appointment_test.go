package appointmentController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vahan/config"
	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	appointmentRoutes "vahan/routers/appointmentRoutes"

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
	appointmentRoutes.SetupAppointmentRoutes(app)
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

func TestBookAndCancelAppointment(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	_, citizenToken := createUser(t, db, "citizen@example.com", models.RoleCitizen)

	resp := doRequest(t, app, "POST", "/appointments/book", citizenToken, fiber.Map{
		"rtoOfficeId":     office.ID,
		"purpose":         "DL_TEST",
		"appointmentDate": time.Now().Add(48 * time.Hour),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var appointment models.Appointment
	require.NoError(t, db.First(&appointment).Error)
	assert.Equal(t, models.AppointmentStatusBooked, appointment.Status)

	resp = doRequest(t, app, "PUT", "/appointments/1/cancel", citizenToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&appointment, 1).Error)
	assert.Equal(t, models.AppointmentStatusCancelled, appointment.Status)

	// Cancelling a cancelled appointment is reported distinctly from a
	// missing one.
	resp = doRequest(t, app, "PUT", "/appointments/1/cancel", citizenToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Appointment already cancelled!", body["message"])
}

func TestCancelOthersAppointment(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	citizen, _ := createUser(t, db, "citizen@example.com", models.RoleCitizen)
	_, strangerToken := createUser(t, db, "stranger@example.com", models.RoleCitizen)

	appointment := models.Appointment{UserID: citizen.ID, RtoOfficeID: office.ID, Purpose: "DL_TEST", AppointmentDate: time.Now().Add(24 * time.Hour), Status: models.AppointmentStatusBooked}
	require.NoError(t, db.Create(&appointment).Error)

	resp := doRequest(t, app, "PUT", "/appointments/1/cancel", strangerToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	require.NoError(t, db.First(&appointment, 1).Error)
	assert.Equal(t, models.AppointmentStatusBooked, appointment.Status)
}

func TestRescheduleKeepsBookedStatus(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	citizen, citizenToken := createUser(t, db, "citizen@example.com", models.RoleCitizen)

	original := time.Now().Add(24 * time.Hour)
	appointment := models.Appointment{UserID: citizen.ID, RtoOfficeID: office.ID, Purpose: "VEHICLE_INSPECTION", AppointmentDate: original, Status: models.AppointmentStatusBooked}
	require.NoError(t, db.Create(&appointment).Error)

	newDate := time.Now().Add(96 * time.Hour)
	resp := doRequest(t, app, "PUT", "/appointments/1/reschedule", citizenToken, fiber.Map{
		"appointmentDate": newDate,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&appointment, 1).Error)
	assert.Equal(t, models.AppointmentStatusBooked, appointment.Status)
	assert.WithinDuration(t, newDate, appointment.AppointmentDate, time.Second)
}

func TestRescheduleRejectsPastDate(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	citizen, citizenToken := createUser(t, db, "citizen@example.com", models.RoleCitizen)

	appointment := models.Appointment{UserID: citizen.ID, RtoOfficeID: office.ID, Purpose: "DL_TEST", AppointmentDate: time.Now().Add(24 * time.Hour), Status: models.AppointmentStatusBooked}
	require.NoError(t, db.Create(&appointment).Error)

	resp := doRequest(t, app, "PUT", "/appointments/1/reschedule", citizenToken, fiber.Map{
		"appointmentDate": time.Now().Add(-24 * time.Hour),
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCompleteAppointment(t *testing.T) {
	app, db := setupApp(t)
	office := createOffice(t, db)
	citizen, citizenToken := createUser(t, db, "citizen@example.com", models.RoleCitizen)
	officer, officerToken := createUser(t, db, "officer@example.com", models.RoleRtoOfficer)

	appointment := models.Appointment{UserID: citizen.ID, RtoOfficeID: office.ID, Purpose: "DOCUMENT_SUBMISSION", AppointmentDate: time.Now().Add(24 * time.Hour), Status: models.AppointmentStatusBooked}
	require.NoError(t, db.Create(&appointment).Error)

	resp := doRequest(t, app, "PUT", "/appointments/1/complete", officerToken, fiber.Map{"notes": "All documents received"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&appointment, 1).Error)
	assert.Equal(t, models.AppointmentStatusCompleted, appointment.Status)
	require.NotNil(t, appointment.CompletedBy)
	assert.Equal(t, officer.ID, *appointment.CompletedBy)
	assert.Equal(t, "All documents received", appointment.CompletionNotes)

	// COMPLETED is terminal, rescheduling matches no row
	resp = doRequest(t, app, "PUT", "/appointments/1/reschedule", citizenToken, fiber.Map{
		"appointmentDate": time.Now().Add(72 * time.Hour),
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBookRejectsInactiveOffice(t *testing.T) {
	app, db := setupApp(t)
	office := models.RtoOffice{Name: "Closed RTO", Code: "MH99", State: "Maharashtra", District: "Pune", Status: models.OfficeStatusInactive}
	require.NoError(t, db.Create(&office).Error)
	_, citizenToken := createUser(t, db, "citizen@example.com", models.RoleCitizen)

	resp := doRequest(t, app, "POST", "/appointments/book", citizenToken, fiber.Map{
		"rtoOfficeId":     office.ID,
		"purpose":         "DL_TEST",
		"appointmentDate": time.Now().Add(48 * time.Hour),
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
