package service

import (
	"context"
	"fmt"
	"herbal/internal/entity/common"
	"herbal/internal/entity/converter"
	"herbal/internal/entity/db"
	"herbal/internal/entity/dto"
	"herbal/internal/model"
	"herbal/internal/storage"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// SearchLimit caps results of the search API.
	SearchLimit = 50

	dashboardRecentPlants = 5
	defaultRejectReason   = "No reason provided"
	plantImageCategory    = "plants"
)

// PlantService implements plant submission, moderation and listing.
type PlantService struct {
	repo   model.Repository
	images storage.Storage
	now    func() time.Time
}

// NewPlantService 创建植物服务实例
func NewPlantService(repo model.Repository, images storage.Storage) *PlantService {
	return &PlantService{
		repo:   repo,
		images: images,
		now:    time.Now,
	}
}

// AdminStats backs the moderation dashboard.
type AdminStats struct {
	TotalPlants     int64
	PendingApproval int64
	TotalUsers      int64
	TotalCategories int64
	RecentPlants    []db.Plant
	PendingPlants   []db.Plant
}

// UserStats backs a user's own dashboard.
type UserStats struct {
	PlantsAdded     int64
	ApprovedPlants  int64
	PendingPlants   int64
	Identifications int64
	Plants          []db.Plant
}

// Submit creates a plant authored by actor. Plants submitted by an admin are
// approved immediately; all others start pending. The image, when present,
// is stored before the record and removed again if the record cannot be
// written.
func (s *PlantService) Submit(ctx context.Context, actor Actor, form *dto.PlantForm, image *Upload) (*db.Plant, error) {
	if actor.Anonymous() {
		return nil, ErrPermissionDenied
	}
	if form == nil || strings.TrimSpace(form.Name) == "" {
		return nil, validationf("name is required")
	}

	ext := ""
	if image != nil && len(image.Data) > 0 {
		var err error
		if ext, err = ImageExtension(image.Filename); err != nil {
			return nil, err
		}
	}

	plant := converter.PlantFromForm(form)
	categories, err := s.repo.FindCategoriesByIDs(ctx, form.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	plant.Categories = categories

	now := s.now().UTC()
	plant.AuthorID = actor.ID
	plant.CreatedAt = now
	plant.UpdatedAt = now
	if actor.Can(common.CapSelfApprove) {
		approver := actor.ID
		approvedAt := now
		plant.IsApproved = true
		plant.ApprovedByID = &approver
		plant.ApprovedAt = &approvedAt
	}

	if ext != "" {
		if s.images == nil {
			return nil, fmt.Errorf("image storage is not configured")
		}
		key, err := s.images.Save(ctx, image.Data, storage.SaveOptions{
			Category:  plantImageCategory,
			Extension: ext,
			BaseName:  uploadBaseName(image.Filename, now),
		})
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		plant.ImageKey = key
	}

	if err := s.repo.CreatePlant(ctx, plant); err != nil {
		s.discardImage(ctx, plant.ImageKey)
		return nil, fmt.Errorf("create plant: %w", mapRepoError(err))
	}

	logrus.WithFields(logrus.Fields{
		"plant_id": plant.ID,
		"user_id":  actor.ID,
		"approved": plant.IsApproved,
	}).Info("plant submitted")

	created, err := s.repo.GetPlant(ctx, plant.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return created, nil
}

// Approve marks a plant approved by actor. Only admins may approve.
func (s *PlantService) Approve(ctx context.Context, actor Actor, plantID uint) (*db.Plant, error) {
	if !actor.Can(common.CapApprovePlant) {
		return nil, ErrPermissionDenied
	}
	plant, err := s.repo.ApprovePlant(ctx, plantID, actor.ID, s.now().UTC())
	if err != nil {
		return nil, mapRepoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"plant_id": plantID,
		"admin_id": actor.ID,
	}).Info("plant approved")
	return plant, nil
}

// Reject removes a plant. The reason is written to the row right before it
// is deleted, so it does not survive the operation.
func (s *PlantService) Reject(ctx context.Context, actor Actor, plantID uint, reason string) error {
	if !actor.Can(common.CapRejectPlant) {
		return ErrPermissionDenied
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultRejectReason
	}
	if err := s.repo.RejectPlant(ctx, plantID, reason); err != nil {
		return mapRepoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"plant_id": plantID,
		"admin_id": actor.ID,
		"reason":   reason,
	}).Info("plant rejected")
	return nil
}

// Search lists plants visible to actor matching the query text and
// category. A positive limit caps the result.
func (s *PlantService) Search(ctx context.Context, actor Actor, query *dto.PlantQuery, limit int) ([]db.Plant, error) {
	params := dto.PlantQuery{
		IncludePending: actor.Can(common.CapViewPending),
		Limit:          limit,
	}
	if query != nil {
		params.Query = strings.TrimSpace(query.Query)
		params.CategoryID = query.CategoryID
	}
	plants, err := s.repo.SearchPlants(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("search plants: %w", err)
	}
	return plants, nil
}

// Get returns a plant if actor may see it. Hidden plants are reported as
// not found.
func (s *PlantService) Get(ctx context.Context, actor Actor, plantID uint) (*db.Plant, error) {
	plant, err := s.repo.GetPlant(ctx, plantID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !plant.VisibleTo(actor.ID, actor.Can(common.CapViewPending)) {
		return nil, ErrNotFound
	}
	return plant, nil
}

// Categories lists all categories with the number of plants actor can see.
func (s *PlantService) Categories(ctx context.Context, actor Actor) ([]db.Category, error) {
	return s.repo.ListCategories(ctx, actor.Can(common.CapViewPending))
}

// CategoryPlants returns a category and its plants visible to actor.
func (s *PlantService) CategoryPlants(ctx context.Context, actor Actor, categoryID uint) (*db.Category, []db.Plant, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, mapRepoError(err)
	}
	plants, err := s.Search(ctx, actor, &dto.PlantQuery{CategoryID: category.ID}, 0)
	if err != nil {
		return nil, nil, err
	}
	return category, plants, nil
}

// AdminDashboard collects moderation statistics.
func (s *PlantService) AdminDashboard(ctx context.Context, actor Actor) (*AdminStats, error) {
	if !actor.Can(common.CapViewPending) {
		return nil, ErrPermissionDenied
	}

	var (
		stats AdminStats
		err   error
	)
	if stats.TotalPlants, err = s.repo.CountPlants(ctx, &dto.PlantQuery{IncludePending: true}); err != nil {
		return nil, err
	}
	if stats.PendingApproval, err = s.repo.CountPlants(ctx, &dto.PlantQuery{PendingOnly: true}); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = s.repo.CountCategories(ctx); err != nil {
		return nil, err
	}
	stats.RecentPlants, err = s.repo.SearchPlants(ctx, &dto.PlantQuery{
		IncludePending: true,
		NewestFirst:    true,
		Limit:          dashboardRecentPlants,
	})
	if err != nil {
		return nil, err
	}
	stats.PendingPlants, err = s.repo.SearchPlants(ctx, &dto.PlantQuery{PendingOnly: true, NewestFirst: true})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// UserDashboard collects the actor's own contributions, newest first.
func (s *PlantService) UserDashboard(ctx context.Context, actor Actor) (*UserStats, error) {
	if actor.Anonymous() {
		return nil, ErrPermissionDenied
	}

	plants, err := s.repo.SearchPlants(ctx, &dto.PlantQuery{
		IncludePending: true,
		AuthorID:       actor.ID,
		NewestFirst:    true,
	})
	if err != nil {
		return nil, err
	}
	identifications, err := s.repo.CountIdentificationsByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		PlantsAdded:     int64(len(plants)),
		Identifications: identifications,
		Plants:          plants,
	}
	for _, p := range plants {
		if p.IsApproved {
			stats.ApprovedPlants++
		} else {
			stats.PendingPlants++
		}
	}
	return stats, nil
}

func (s *PlantService) discardImage(ctx context.Context, key string) {
	discard(ctx, s.images, key)
}

// discard removes an orphaned upload. It runs even when ctx was cancelled.
func discard(ctx context.Context, images storage.Storage, key string) {
	if images == nil || key == "" {
		return
	}
	if err := images.Delete(context.WithoutCancel(ctx), key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to remove orphaned upload")
	}
}
