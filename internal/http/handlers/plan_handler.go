// README: Itinerary plan handler (validation, elicitation, generation).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"globtrek/internal/modules/planner"
)

type PlanHandler struct {
	planner *planner.Service
}

func NewPlanHandler(svc *planner.Service) *PlanHandler {
	return &PlanHandler{planner: svc}
}

// Generate handles POST /api/ai/plan.
func (h *PlanHandler) Generate(c *gin.Context) {
	// Credential check comes before validation so a misconfigured server never
	// answers with elicitation questions.
	if !h.planner.Configured() {
		writeError(c, http.StatusInternalServerError, planner.ErrMissingAPIKey.Error())
		return
	}

	var req planner.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	v, elicit := planner.Validate(req)
	if elicit != nil {
		writeJSON(c, http.StatusOK, gin.H{
			"status":    "need_info",
			"needs":     elicit.Needs,
			"questions": elicit.Questions,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	res, err := h.planner.Generate(ctx, v)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"status":         "ok",
		"plan":           res.Plan,
		"planJson":       res.PlanJSON,
		"next_questions": res.NextQuestions,
		"model_used":     res.ModelUsed,
	})
}
