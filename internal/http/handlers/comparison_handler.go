// README: Platform comparison handler (fixed fare vs negotiated offer).
package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/logger"
	"ridedeck/internal/metrics"
	"ridedeck/internal/modules/pricing"
)

// decimalFare admits plain decimal or exponent notation; hex, inf and nan are refused.
var decimalFare = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

type ComparisonHandler struct {
	pricing *pricing.Service
	log     logger.Logger
}

func NewComparisonHandler(svc *pricing.Service, log logger.Logger) *ComparisonHandler {
	return &ComparisonHandler{pricing: svc, log: log}
}

func (h *ComparisonHandler) Compare(c *gin.Context) {
	req := pricing.ComparisonRequest{
		Scenario:     pricing.DefaultScenario,
		ProposedFare: pricing.DefaultProposedFare,
	}
	if raw, ok := c.GetQuery("scenario"); ok {
		if raw == "" {
			writeValidationError(c, fieldError{Field: "scenario", Message: "must be one of short, peak, long"})
			return
		}
		req.Scenario = pricing.Scenario(raw)
	}
	if raw, ok := c.GetQuery("proposed_fare"); ok {
		fare, err := strconv.ParseFloat(raw, 64)
		if err != nil || !decimalFare.MatchString(raw) {
			writeValidationError(c, fieldError{Field: "proposed_fare", Message: "must be a number"})
			return
		}
		req.ProposedFare = fare
	}

	res, err := h.pricing.Compare(req)
	if err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(c, fieldError{Field: verr.Field, Message: verr.Message})
			return
		}
		h.log.Error(c.Request.Context(), "comparison failed", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.RecordComparison(string(res.Scenario), string(res.Beneficiary))
	writeJSON(c, http.StatusOK, res)
}
