// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"globtrek/internal/llm"
	"globtrek/internal/modules/hotels"
	"globtrek/internal/modules/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError maps generation failures onto the response envelope.
// Provider errors carry the upstream status and body verbatim; anything
// unexpected is wrapped with the generic planner prefix.
func writePlannerError(c *gin.Context, err error) {
	var pe *llm.ProviderError
	switch {
	case errors.Is(err, planner.ErrMissingAPIKey):
		writeError(c, http.StatusInternalServerError, err.Error())
	case errors.As(err, &pe):
		writeError(c, http.StatusInternalServerError, pe.Error())
	default:
		writeError(c, http.StatusInternalServerError, "Planner failed: "+err.Error())
	}
}

// writeHotelError surfaces provider failures from the token or offers endpoint.
func writeHotelError(c *gin.Context, err error) {
	var pe *hotels.ProviderError
	if errors.As(err, &pe) {
		writeError(c, http.StatusBadGateway, pe.Error())
		return
	}
	writeError(c, http.StatusBadGateway, err.Error())
}
