package api

import (
	"context"
	"herbal/internal/entity/converter"
	"herbal/internal/entity/dto"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListUsers pages through accounts for administrators.
func (h *HTTPHandler) ListUsers(c *gin.Context) {
	var query dto.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	users, meta, err := h.users.List(ctx, actorFrom(c), &query)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: converter.UsersToSummaries(users),
		Meta:  meta,
	})
}

// UpdateUser changes role, active flag or names of an account.
func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.users.Update(ctx, actorFrom(c), id, &req)
	if err != nil {
		respondError(c, err, ErrCodeUserNotFound)
		return
	}
	c.JSON(http.StatusOK, converter.UserToSummary(user))
}

// MyDashboard summarises the caller's own plants and identifications.
func (h *HTTPHandler) MyDashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	stats, err := h.plants.UserDashboard(ctx, actorFrom(c))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.UserDashboard{
		PlantsAdded:        stats.PlantsAdded,
		ApprovedPlants:     stats.ApprovedPlants,
		PendingPlants:      stats.PendingPlants,
		IdentificationsRun: stats.Identifications,
		Plants:             converter.PlantsToSummaries(stats.Plants, h.publicURL),
	})
}

// parseIDParam reads a positive numeric path parameter. It writes the 400
// response itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid "+name, gin.H{"field": name})
		return 0, false
	}
	return uint(id), true
}
