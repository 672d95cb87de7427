package api

import (
	"context"
	"errors"
	"fmt"
	"herbal/internal/entity/converter"
	"herbal/internal/entity/dto"
	"herbal/internal/i18n"
	"herbal/internal/service"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListPlants lists the plants visible to the caller, optionally filtered by
// category and search text.
func (h *HTTPHandler) ListPlants(c *gin.Context) {
	h.searchPlants(c, 0)
}

// SearchPlants is the capped search endpoint.
func (h *HTTPHandler) SearchPlants(c *gin.Context) {
	h.searchPlants(c, service.SearchLimit)
}

func (h *HTTPHandler) searchPlants(c *gin.Context, limit int) {
	query := plantQueryFrom(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	plants, err := h.plants.Search(ctx, actorFrom(c), query, limit)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.PlantListResponse{
		Plants: converter.PlantsToSummaries(plants, h.publicURL),
		Total:  len(plants),
	})
}

// plantQueryFrom reads q and category from the query string. A category
// that is not a positive integer is dropped, so the listing stays unfiltered
// instead of failing.
func plantQueryFrom(c *gin.Context) *dto.PlantQuery {
	query := &dto.PlantQuery{Query: c.Query("q")}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			logrus.WithField("category", raw).Debug("ignoring malformed category filter")
		} else {
			query.CategoryID = uint(id)
		}
	}
	return query
}

// GetPlant returns one plant. Pending plants are only shown to admins and
// their author.
func (h *HTTPHandler) GetPlant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	plant, err := h.plants.Get(ctx, actorFrom(c), id)
	if err != nil {
		respondError(c, err, ErrCodePlantNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.PlantDetailResponse{Plant: converter.PlantToDetail(plant, h.publicURL)})
}

// SubmitPlant handles the multipart plant form with an optional "image" file.
func (h *HTTPHandler) SubmitPlant(c *gin.Context) {
	h.limitBody(c)

	var form dto.PlantForm
	if err := c.ShouldBind(&form); err != nil {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid plant payload", err.Error())
		return
	}

	image, err := readUpload(c, "image")
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout*2)
	defer cancel()

	plant, err := h.plants.Submit(ctx, actorFrom(c), &form, image)
	if err != nil {
		respondError(c, err, "")
		return
	}

	lang := PreferencesFrom(c).Language
	message := i18n.T(lang, "plant_added_success")
	if !plant.IsApproved {
		message = i18n.T(lang, "plant_pending_approval")
	}
	c.JSON(http.StatusCreated, dto.PlantSubmitResponse{
		Plant:   converter.PlantToDetail(plant, h.publicURL),
		Pending: !plant.IsApproved,
		Message: message,
	})
}

// ListCategories lists categories with the number of plants the caller can see.
func (h *HTTPHandler) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	categories, err := h.plants.Categories(ctx, actorFrom(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: converter.CategoriesToDTO(categories)})
}

// CategoryPlants lists the visible plants of a single category.
func (h *HTTPHandler) CategoryPlants(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	category, plants, err := h.plants.CategoryPlants(ctx, actorFrom(c), id)
	if err != nil {
		respondError(c, err, ErrCodeCategoryNotFound)
		return
	}
	out := converter.CategoryToDTO(category)
	out.PlantCount = int64(len(plants))
	c.JSON(http.StatusOK, dto.CategoryPlantsResponse{
		Category: out,
		Plants:   converter.PlantsToSummaries(plants, h.publicURL),
	})
}

func (h *HTTPHandler) limitBody(c *gin.Context) {
	if h.cfg.UploadMaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.UploadMaxBytes)
	}
}

// readUpload reads an optional multipart file. A missing file yields nil.
func readUpload(c *gin.Context, field string) (*service.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	if header.Filename == "" {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	return &service.Upload{Filename: header.Filename, Data: data}, nil
}
