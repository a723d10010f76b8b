package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blog-platform/models"
)

// InitDB opens the postgres connection, runs schema migration, and seeds
// the standard roles.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedRoles(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate registers the join tables (so their AssignedAt/CreatedAt columns
// survive) and creates the schema. Foreign keys carry ON DELETE CASCADE, so
// removing a user, article, tag, or comment removes its dependents in the
// store itself.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Article{}, "Tags", &models.ArticleTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
	)
}

// SeedRoles makes sure the standard roles exist before the first login.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Full administrative access"},
		{Name: models.RoleModerator, Description: "Content moderation"},
		{Name: models.RoleUser, Description: "Regular user"},
	}

	for _, role := range roles {
		r := role
		if err := db.Where(models.Role{Name: role.Name}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}
	return nil
}
