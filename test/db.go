package test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"student-wellness-system/config"
	"student-wellness-system/internal/global/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var dbSeq int64

// SetupDB points the global handle at a fresh in-memory database and loads a
// minimal configuration. Each call gets its own schema.
func SetupDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{
		Mode:   config.ModeDebug,
		Domain: "http://localhost:8080",
		Prefix: "api",
		JWT: config.JWT{
			AccessSecret:  "test-access-secret",
			AccessExpire:  3600,
			ConfirmSecret: "test-confirm-secret",
			ConfirmExpire: 3600,
		},
		Log: config.Log{Level: "error"},
	})

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AutoMigrateModels...))
	database.DB = db
}
