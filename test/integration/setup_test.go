//go:build integration
// +build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/lkwun/formbuilder-go/config"
	"github.com/lkwun/formbuilder-go/db"
	"github.com/lkwun/formbuilder-go/internal/testutils"
	"github.com/lkwun/formbuilder-go/middleware"
	"github.com/lkwun/formbuilder-go/models"
	"github.com/lkwun/formbuilder-go/routes"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router     *gin.Engine
	Owner      *models.User
	Rival      *models.User
	OwnerToken string
	RivalToken string
}

var testCtx *TestContext
var teardown func()

func TestMain(m *testing.M) {
	if err := setupTestEnvironment(); err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	if teardown != nil {
		teardown()
	}
	os.Exit(code)
}

func setupTestEnvironment() error {
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "formbuilder-test")
	_ = os.Setenv("TOKEN_TTL", "1h")

	config.LoadConfig()
	middleware.Init()

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	teardown = cleanup
	db.InitWithGormDB(gormDB)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(router)

	testCtx = &TestContext{Router: router}
	return createTestData()
}

func createTestData() error {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	owner := &models.User{
		Username: "test-owner",
		Email:    "owner@test.com",
		Password: string(hashed),
	}
	if err := db.DB.Create(owner).Error; err != nil {
		return fmt.Errorf("failed to create owner user: %v", err)
	}
	testCtx.Owner = owner

	rival := &models.User{
		Username: "test-rival",
		Email:    "rival@test.com",
		Password: string(hashed),
	}
	if err := db.DB.Create(rival).Error; err != nil {
		return fmt.Errorf("failed to create rival user: %v", err)
	}
	testCtx.Rival = rival

	var err error
	if testCtx.OwnerToken, err = middleware.GenerateToken(owner.UID, owner.Username, config.TokenTTL); err != nil {
		return fmt.Errorf("failed to generate owner token: %v", err)
	}
	if testCtx.RivalToken, err = middleware.GenerateToken(rival.UID, rival.Username, config.TokenTTL); err != nil {
		return fmt.Errorf("failed to generate rival token: %v", err)
	}

	return nil
}

// GetTestContext returns the global test context
func GetTestContext() *TestContext {
	return testCtx
}
