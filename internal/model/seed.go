package model

import (
	"context"
	"errors"
	"herbal/internal/auth"
	"herbal/internal/config"
	"herbal/internal/entity/common"
	"herbal/internal/entity/db"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultCategories are created on startup when missing.
var DefaultCategories = []db.Category{
	{Name: "Medicinal Plants", Description: "Plants used in traditional and modern medicine"},
	{Name: "Aromatic Plants", Description: "Plants valued for their fragrance and essential oils"},
	{Name: "Spices", Description: "Seeds, barks and roots used to flavour food"},
	{Name: "Fruits", Description: "Fruit bearing plants"},
	{Name: "Vegetables", Description: "Plants grown for edible leaves, roots or pods"},
	{Name: "Herbs", Description: "Small leafy plants used fresh or dried"},
}

// SeedDefaultCategories ensures the default categories exist in the database.
func SeedDefaultCategories(ctx context.Context, repo Repository) error {
	if repo == nil {
		return nil
	}

	for _, seed := range DefaultCategories {
		_, err := repo.GetCategoryByName(ctx, seed.Name)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			category := seed
			if err := repo.CreateCategory(ctx, &category); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

// SeedAdmin creates the configured administrator account when it does not
// exist yet. An existing account is never modified.
func SeedAdmin(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}
	username := strings.TrimSpace(cfg.AdminUsername)
	password := cfg.AdminPassword
	if username == "" || strings.TrimSpace(password) == "" {
		logrus.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &db.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: hash,
		Role:         common.RoleAdmin,
		FirstName:    "Admin",
		LastName:     "User",
		IsActive:     true,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  admin.ID,
		"username": admin.Username,
	}).Info("admin account created")
	return nil
}
