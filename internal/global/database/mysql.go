package database

import (
	"fmt"

	"student-wellness-system/config"
	"student-wellness-system/internal/model"
	"student-wellness-system/tools"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// AutoMigrateModels lists the models migrated at startup (shared with the
// sqlite-backed test harness).
var AutoMigrateModels = []any{
	&model.User{},
	&model.Faculty{},
	&model.UserPreference{},
	&model.Activity{},
	&model.Schedule{},
	&model.Enrollment{},
	&model.ActivityReview{},
	&model.Participation{},
	&model.Tournament{},
	&model.Team{},
	&model.TournamentParticipant{},
	&model.TournamentGame{},
	&model.SocialProject{},
	&model.SocialEvent{},
	&model.SocialEventEnrollment{},
}

func Init() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Get().Mysql.Username,
		config.Get().Mysql.Password,
		config.Get().Mysql.Host,
		config.Get().Mysql.Port,
		config.Get().Mysql.DBName,
	)
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(AutoMigrateModels...))
}
