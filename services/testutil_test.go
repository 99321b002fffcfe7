// file: services/testutil_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"DevOlympus/config"
	"DevOlympus/models"

	"github.com/stretchr/testify/require"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupTestDB 起一个一次性的 MySQL 容器并迁移全部表
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcmysql.Run(ctx,
		"mysql:8.0",
		tcmysql.WithDatabase("devolympus_test"),
		tcmysql.WithUsername("test_user"),
		tcmysql.WithPassword("test_password"),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dsn, err := container.ConnectionString(ctx, "charset=utf8mb4", "parseTime=True", "loc=Local")
	require.NoError(t, err)

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Payment{},
		&models.ConsentLetter{},
		&models.EventInfo{},
	))

	return db
}

// testConfig 报名窗口开放、队伍 3~4 人、缴费核验开关打开
func testConfig() config.Config {
	return config.Config{
		RegistrationOpen:           true,
		RegistrationDeadline:       time.Now().Add(24 * time.Hour),
		MinTeamSize:                3,
		MaxTeamSize:                4,
		PaymentVerificationEnabled: true,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, name string, isAdmin bool) models.User {
	t.Helper()
	user := models.User{
		Email:         email,
		Name:          name,
		IsAdmin:       isAdmin,
		LoggedInTimes: 1,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// fakeUploader 替代真实资源存储，记录调用次数
type fakeUploader struct {
	calls int
	fail  bool
}

func (f *fakeUploader) Upload(_ context.Context, folder, publicID, _ string, _ []byte) (*UploadResult, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("asset store unavailable")
	}
	return &UploadResult{
		URL:      fmt.Sprintf("https://assets.example.com/%s/%s", folder, publicID),
		PublicID: folder + "/" + publicID,
	}, nil
}
