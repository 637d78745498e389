package service

import (
	"testing"

	"reeldine/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	// a single connection keeps the :memory: database alive and shared
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.FoodPartner{},
		&model.Food{},
		&model.FoodTag{},
		&model.FoodLike{},
		&model.FoodSave{},
		&model.UserFollow{},
		&model.Comment{},
		&model.CommentLike{},
		&model.Challenge{},
		&model.ChallengeParticipant{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{FullName: name, Email: email, Password: "x", IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedPartner(t *testing.T, db *gorm.DB, name string, rating float64, lng, lat float64) *model.FoodPartner {
	t.Helper()
	partner := &model.FoodPartner{
		Name:        name,
		ContactName: "contact",
		Phone:       "555-0100",
		Address:     "1 Test St",
		Email:       name + "@example.com",
		Password:    "x",
		Rating:      rating,
		LocationLng: lng,
		LocationLat: lat,
		IsActive:    true,
	}
	if err := db.Create(partner).Error; err != nil {
		t.Fatalf("seed partner: %v", err)
	}
	return partner
}

func seedFood(t *testing.T, db *gorm.DB, f *model.Food, tags ...string) *model.Food {
	t.Helper()
	f.IsActive = true
	if f.Video == "" {
		f.Video = "videos/" + f.Name
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	for _, tag := range tags {
		if err := db.Create(&model.FoodTag{FoodID: f.ID, Tag: tag}).Error; err != nil {
			t.Fatalf("seed tag: %v", err)
		}
	}
	return f
}
