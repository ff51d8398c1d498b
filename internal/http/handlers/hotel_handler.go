// README: Hotel offers handler (query defaults and provider proxying).
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"globtrek/internal/modules/hotels"
)

type HotelHandler struct {
	hotels *hotels.Service
}

func NewHotelHandler(svc *hotels.Service) *HotelHandler {
	return &HotelHandler{hotels: svc}
}

// Search handles GET /api/hotels.
func (h *HotelHandler) Search(c *gin.Context) {
	adults, err := strconv.Atoi(c.DefaultQuery("adults", "2"))
	if err != nil || adults < 1 {
		adults = 2
	}

	q := hotels.Query{
		CityCode:     c.DefaultQuery("cityCode", "PDX"),
		CheckInDate:  c.DefaultQuery("checkInDate", "2025-09-01"),
		CheckOutDate: c.DefaultQuery("checkOutDate", "2025-09-03"),
		Adults:       adults,
		Currency:     c.DefaultQuery("currency", "USD"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	items, err := h.hotels.Search(ctx, q)
	if err != nil {
		writeHotelError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"items": items})
}
