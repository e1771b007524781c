// README: Diagnostic handler; always answers 200 with the status report.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/logger"
	"ridedeck/internal/metrics"
	"ridedeck/internal/modules/diagnostic"
)

type DiagnosticHandler struct {
	diag *diagnostic.Service
	log  logger.Logger
}

func NewDiagnosticHandler(svc *diagnostic.Service, log logger.Logger) *DiagnosticHandler {
	return &DiagnosticHandler{diag: svc, log: log}
}

func (h *DiagnosticHandler) Test(c *gin.Context) {
	ctx := logger.WithAction(c.Request.Context(), "diagnostic")
	rep := h.diag.Report(ctx)
	metrics.RecordDiagnosticProbe(rep.ConnectionStatus)
	h.log.Info(ctx, "diagnostic probe",
		"database", rep.Database,
		"connection", rep.ConnectionStatus,
		"collections", len(rep.Collections),
	)
	writeJSON(c, http.StatusOK, rep)
}
