package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"finacademy/config"
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// SetupTestDB points the global database handle at a fresh in-memory sqlite
// schema and installs a test configuration. The externally managed tables are
// migrated here too: tests need the full schema contract locally.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:        "0",
		JWTKey:      "test-secret",
		SaltRound:   bcrypt.MinCost,
		UploadDir:   t.TempDir(),
		CartTTLDays: 30,
	}

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.CartItem{},
		&models.Enrollment{},
		&models.Course{},
		&models.Review{},
		&models.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	return db
}

// CreateUser inserts a user plus its profile row with a working password
// ("password123") and returns the user together with a bearer token.
func CreateUser(t *testing.T, db *gorm.DB, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if err := db.Create(&models.Profile{UserID: user.ID}).Error; err != nil {
		t.Fatalf("creating profile: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	return user, "Bearer " + token
}

// DecodeBody unmarshals a response body into out.
func DecodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decoding response body %q: %v", body, err)
	}
}
