package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ScoreUpdateRequest is the payload of POST /api/scores. Score is a pointer
// so that 0 is accepted and an absent field is rejected.
type ScoreUpdateRequest struct {
	House string `json:"house" example:"Vijaya"`
	Score *int   `json:"score" example:"120"`
}

// listScores godoc
// @Summary      List house scores
// @Tags         scores
// @Produce      json
// @Success      200  {array}   models.Score
// @Failure      500  {object}  map[string]string
// @Router       /api/scores [get]
func (h *Handler) listScores(c *gin.Context) {
	scores, err := h.services.Scores.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error fetching scores", "scores_list_failed")
		return
	}
	c.JSON(http.StatusOK, scores)
}

// updateScore godoc
// @Summary      Set a house score
// @Tags         scores
// @Accept       json
// @Produce      json
// @Param        body  body      ScoreUpdateRequest  true  "house and new score"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/scores [post]
func (h *Handler) updateScore(c *gin.Context) {
	var input ScoreUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	updated, err := h.services.Scores.Update(c.Request.Context(), input.House, input.Score)
	if err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error updating score", "score_update_failed", "house", input.House)
		return
	}

	h.opts.Metrics.ObserveScoreUpdate(updated.House)
	if h.log != nil {
		h.log.Infow("score_updated", "house", updated.House, "score", updated.Score, "by", currentSession(c).Username)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Score updated successfully"})
}
