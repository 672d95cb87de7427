package api

import (
	"context"
	"herbal/internal/entity/converter"
	"herbal/internal/entity/dto"
	"herbal/internal/i18n"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminDashboard returns moderation statistics and the pending queue.
func (h *HTTPHandler) AdminDashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	stats, err := h.plants.AdminDashboard(ctx, actorFrom(c))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.AdminDashboard{
		TotalPlants:     stats.TotalPlants,
		PendingApproval: stats.PendingApproval,
		TotalUsers:      stats.TotalUsers,
		TotalCategories: stats.TotalCategories,
		RecentPlants:    converter.PlantsToSummaries(stats.RecentPlants, h.publicURL),
		PendingPlants:   converter.PlantsToSummaries(stats.PendingPlants, h.publicURL),
	})
}

// ApprovePlant 审核通过植物
func (h *HTTPHandler) ApprovePlant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	plant, err := h.plants.Approve(ctx, actorFrom(c), id)
	if err != nil {
		respondError(c, err, ErrCodePlantNotFound)
		return
	}

	detail := converter.PlantToDetail(plant, h.publicURL)
	c.JSON(http.StatusOK, dto.ModerationResponse{
		Plant:   &detail,
		Message: i18n.T(PreferencesFrom(c).Language, "plant_approved"),
	})
}

// RejectPlant 拒绝并删除植物
func (h *HTTPHandler) RejectPlant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.plants.Reject(ctx, actorFrom(c), id, req.Reason); err != nil {
		respondError(c, err, ErrCodePlantNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ModerationResponse{
		Message: i18n.T(PreferencesFrom(c).Language, "plant_rejected"),
	})
}
