package api

import (
	"context"
	"herbal/internal/entity/common"
	"herbal/internal/entity/converter"
	"herbal/internal/entity/dto"
	"herbal/internal/i18n"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IdentifyPlant runs the uploaded "plant_image" through the identifier.
// Anonymous visitors may use it.
func (h *HTTPHandler) IdentifyPlant(c *gin.Context) {
	h.limitBody(c)

	image, err := readUpload(c, "plant_image")
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.identifyTimeout)
	defer cancel()

	outcome, err := h.identifications.Identify(ctx, actorFrom(c), image, c.PostForm("notes"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	lang := PreferencesFrom(c).Language
	message := i18n.T(lang, "no_match")
	if outcome.MatchVisible {
		message = i18n.T(lang, "match_found")
	}

	record := outcome.Record
	c.JSON(http.StatusOK, dto.IdentifyResponse{
		Result: dto.IdentificationResult{
			ScientificName: record.IdentifiedSpecies,
			CommonNames:    record.CommonNames.ToSlice(),
			Confidence:     record.Confidence,
			SimilarImages:  outcome.Result.SimilarImages,
		},
		Identification: converter.IdentificationToDTO(record, h.publicURL, outcome.MatchVisible),
		MatchFound:     outcome.MatchVisible,
		Message:        message,
	})
}

// RecentIdentifications lists the newest identification records. Suggested
// plants the caller may not see are left out.
func (h *HTTPHandler) RecentIdentifications(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	records, err := h.identifications.Recent(ctx, h.cfg.RecentIdentifyMax)
	if err != nil {
		respondError(c, err, "")
		return
	}

	actor := actorFrom(c)
	canViewPending := actor.Can(common.CapViewPending)
	out := make([]dto.Identification, len(records))
	for i := range records {
		visible := records[i].SuggestedPlant != nil && records[i].SuggestedPlant.VisibleTo(actor.ID, canViewPending)
		out[i] = converter.IdentificationToDTO(&records[i], h.publicURL, visible)
	}
	c.JSON(http.StatusOK, dto.IdentificationListResponse{Identifications: out})
}
