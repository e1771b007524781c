// README: City chart data filtered by city and vehicle.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/modules/citydata"
)

type ChartHandler struct {
	cities *citydata.Service
}

func NewChartHandler(svc *citydata.Service) *ChartHandler {
	return &ChartHandler{cities: svc}
}

func (h *ChartHandler) List(c *gin.Context) {
	rows := h.cities.Filter(citydata.Query{
		City:    c.Query("city"),
		Vehicle: c.Query("vehicle"),
	})
	writeJSON(c, http.StatusOK, rows)
}
