package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/mesflow/internal/db"
	"github.com/terraincognita07/mesflow/internal/models"
)

func newServicesTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "mesflow-services.db"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db.NewRepositories(database)
}

func validOrderInput() OrderInput {
	return OrderInput{
		CustomerName: " Acme Corp ",
		ProductName:  "Gearbox",
		Availability: "In stock",
		Status:       models.OrderStatusPlanned,
		Quantity:     5,
		PlacedDate:   "2026-03-01",
		DeliveryDate: "2026-03-20",
	}
}

func mustCreateServiceTestUser(t *testing.T, repos *db.Repositories, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         models.RoleOperator,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repos.Users.Create(&user))
	return user
}
