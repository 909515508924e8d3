package notificationController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vahan/config"
	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	notificationRoutes "vahan/routers/notificationRoutes"

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
	notificationRoutes.SetupNotificationRoutes(app)
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

func TestMarkAsReadScopedToOwner(t *testing.T) {
	app, db := setupApp(t)
	owner, ownerToken := createUser(t, db, "owner@example.com", models.RoleCitizen)
	_, strangerToken := createUser(t, db, "stranger@example.com", models.RoleCitizen)

	notification := models.Notification{UserID: owner.ID, Message: "Your vehicle registration has been approved."}
	require.NoError(t, db.Create(&notification).Error)

	// Another user cannot mark it read
	resp := doRequest(t, app, "PUT", "/notifications/1/read", strangerToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, "PUT", "/notifications/1/read", ownerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&notification, 1).Error)
	assert.True(t, notification.IsRead)
}

func TestSendNotification(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleRtoAdmin)
	citizen, citizenToken := createUser(t, db, "citizen@example.com", models.RoleCitizen)

	// Citizens cannot push notifications
	resp := doRequest(t, app, "POST", "/notifications/send", citizenToken, fiber.Map{
		"userId":  citizen.ID,
		"message": "hello",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/notifications/send", adminToken, fiber.Map{
		"userId":  citizen.ID,
		"message": "Your RTO office will be closed on Friday.",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/notifications/", citizenToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Notifications []models.Notification `json:"notifications"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Notifications, 1)
	assert.Equal(t, "Your RTO office will be closed on Friday.", body.Data.Notifications[0].Message)
}

func TestSendNotificationToUnknownUser(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleRtoAdmin)

	resp := doRequest(t, app, "POST", "/notifications/send", adminToken, fiber.Map{
		"userId":  999,
		"message": "hello",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
