// README: Earnings simulation handler.
package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/logger"
	"ridedeck/internal/metrics"
	"ridedeck/internal/modules/earnings"
)

type SimulateHandler struct {
	log logger.Logger
}

func NewSimulateHandler(log logger.Logger) *SimulateHandler {
	return &SimulateHandler{log: log}
}

// Pointers distinguish a missing field from an explicit zero. Counts arrive as
// float64 so 8.0 and 1e2 are accepted; the bonus and penalty stay raw so an
// explicit null can be told apart from an absent field.
type simulateReq struct {
	HoursOnline      *float64        `json:"hours_online" binding:"required"`
	FuelCostPerLiter *float64        `json:"fuel_cost_per_liter" binding:"required"`
	KmDriven         *float64        `json:"km_driven" binding:"required"`
	BaseFarePerKm    *float64        `json:"base_fare_per_km" binding:"required"`
	AlgorithmBonus   json.RawMessage `json:"algorithm_bonus"`
	AlgorithmPenalty json.RawMessage `json:"algorithm_penalty"`
}

func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req simulateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug(c.Request.Context(), "simulate rejected", "error", err.Error())
		writeValidationError(c, bindDetail(err)...)
		return
	}

	var detail []fieldError
	hours, ok := wholeNumber(*req.HoursOnline)
	if !ok {
		detail = append(detail, fieldError{Field: "hours_online", Message: "must be a whole number"})
	}
	km, ok := wholeNumber(*req.KmDriven)
	if !ok {
		detail = append(detail, fieldError{Field: "km_driven", Message: "must be a whole number"})
	}
	bonus, fe := optionalNumber("algorithm_bonus", req.AlgorithmBonus)
	if fe != nil {
		detail = append(detail, *fe)
	}
	penalty, fe := optionalNumber("algorithm_penalty", req.AlgorithmPenalty)
	if fe != nil {
		detail = append(detail, *fe)
	}
	if len(detail) > 0 {
		writeValidationError(c, detail...)
		return
	}

	res := earnings.Simulate(earnings.SimInput{
		HoursOnline:      hours,
		FuelCostPerLiter: *req.FuelCostPerLiter,
		KmDriven:         km,
		BaseFarePerKm:    *req.BaseFarePerKm,
		AlgorithmBonus:   bonus,
		AlgorithmPenalty: penalty,
	})
	metrics.RecordSimulation()
	writeJSON(c, http.StatusOK, res.Rounded())
}

// wholeNumber accepts integral values that fit in an int.
func wholeNumber(v float64) (int, bool) {
	if v != math.Trunc(v) || v < math.MinInt || v >= -math.MinInt {
		return 0, false
	}
	return int(v), true
}

// optionalNumber reads a defaulted number: absent is 0, null is rejected.
func optionalNumber(field string, raw json.RawMessage) (float64, *fieldError) {
	if raw == nil {
		return 0, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, &fieldError{Field: field, Message: "must be a number, got null"}
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, &fieldError{Field: field, Message: "must be a number"}
	}
	return v, nil
}
