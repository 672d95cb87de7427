package service

import (
	"context"
	"errors"
	"fmt"
	"herbal/internal/entity/common"
	"herbal/internal/entity/db"
	"herbal/internal/identify"
	"herbal/internal/model"
	"herbal/internal/storage"
	"herbal/internal/utils"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	identificationImageCategory = "identifications"
	unknownSpecies              = "Unknown"
)

// IdentificationService runs uploads through the configured identifier and
// records every successful attempt.
type IdentificationService struct {
	repo       model.Repository
	images     storage.Storage
	identifier identify.Identifier
	now        func() time.Time
}

// NewIdentificationService 创建识别服务实例
func NewIdentificationService(repo model.Repository, images storage.Storage, identifier identify.Identifier) *IdentificationService {
	return &IdentificationService{
		repo:       repo,
		images:     images,
		identifier: identifier,
		now:        time.Now,
	}
}

// IdentifyOutcome is the stored record together with the driver result.
type IdentifyOutcome struct {
	Record *db.PlantIdentification
	Result *identify.Result
	// MatchVisible is set when the suggested plant may be shown to the actor.
	MatchVisible bool
}

// Identify stores the image, asks the identifier for a species guess and
// records the attempt. Anonymous actors are allowed. Nothing is recorded and
// the image is removed when identification fails.
func (s *IdentificationService) Identify(ctx context.Context, actor Actor, image *Upload, notes string) (*IdentifyOutcome, error) {
	if image == nil || strings.TrimSpace(image.Filename) == "" || len(image.Data) == 0 {
		return nil, ErrNoImage
	}
	ext, err := ImageExtension(image.Filename)
	if err != nil {
		return nil, err
	}
	if s.images == nil || s.identifier == nil {
		return nil, fmt.Errorf("identification is not configured")
	}

	now := s.now().UTC()
	key, err := s.images.Save(ctx, image.Data, storage.SaveOptions{
		Category:  identificationImageCategory,
		Extension: ext,
		BaseName:  uploadBaseName(image.Filename, now),
	})
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	result, err := s.identifier.Identify(ctx, identify.Image{
		Path:        key,
		Data:        image.Data,
		ContentType: utils.MimeFromExtension(ext),
	})
	if err == nil && result == nil {
		err = fmt.Errorf("%w: empty result", identify.ErrIdentificationFailed)
	}
	if err != nil {
		discard(ctx, s.images, key)
		if !errors.Is(err, identify.ErrIdentificationFailed) {
			err = fmt.Errorf("%w: %w", identify.ErrIdentificationFailed, err)
		}
		logrus.WithError(err).WithField("key", key).Warn("plant identification failed")
		return nil, err
	}

	species := strings.TrimSpace(result.ScientificName)
	match := species
	if species == "" {
		species = unknownSpecies
		match = ""
	}

	record := &db.PlantIdentification{
		CreatedAt:         now,
		ImageKey:          key,
		IdentifiedSpecies: species,
		CommonNames:       common.StringArray(result.CommonNames),
		Confidence:        result.Confidence,
		RawResponse:       string(result.Raw),
		UserNotes:         strings.TrimSpace(notes),
	}
	if !actor.Anonymous() {
		userID := actor.ID
		record.UserID = &userID
	}

	if err := s.repo.CreateIdentification(ctx, record, match); err != nil {
		discard(ctx, s.images, key)
		return nil, fmt.Errorf("save identification: %w", err)
	}

	outcome := &IdentifyOutcome{Record: record, Result: result}
	if record.SuggestedPlant != nil {
		outcome.MatchVisible = record.SuggestedPlant.VisibleTo(actor.ID, actor.Can(common.CapViewPending))
	}

	logrus.WithFields(logrus.Fields{
		"identification_id": record.ID,
		"species":           species,
		"confidence":        result.Confidence,
		"match":             record.SuggestedPlantID != nil,
	}).Info("plant identified")
	return outcome, nil
}

// Recent returns the newest identification records.
func (s *IdentificationService) Recent(ctx context.Context, limit int) ([]db.PlantIdentification, error) {
	return s.repo.ListRecentIdentifications(ctx, limit)
}
