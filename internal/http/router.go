// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ridedeck/internal/config"
	"ridedeck/internal/http/handlers"
	"ridedeck/internal/http/middleware"
	"ridedeck/internal/logger"
	"ridedeck/internal/modules/citydata"
	"ridedeck/internal/modules/diagnostic"
	"ridedeck/internal/modules/pricing"
)

func NewRouter(
	cityService *citydata.Service,
	pricingService *pricing.Service,
	diagnosticService *diagnostic.Service,
	log logger.Logger,
	corsCfg config.CORSConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Metrics(),
		middleware.CORS(corsCfg),
		middleware.Logging(log),
	)

	deckHandler := handlers.NewDeckHandler()
	r.GET("/", deckHandler.Root)
	r.GET("/health", deckHandler.Health)

	api := r.Group("/api")
	api.GET("/summary", deckHandler.Summary)
	api.GET("/voices", deckHandler.Voices)
	api.GET("/timeline", deckHandler.Timeline)

	chartHandler := handlers.NewChartHandler(cityService)
	api.GET("/chart-data", chartHandler.List)

	simulateHandler := handlers.NewSimulateHandler(log)
	api.POST("/simulate", simulateHandler.Simulate)

	comparisonHandler := handlers.NewComparisonHandler(pricingService, log)
	api.GET("/platform-comparison", comparisonHandler.Compare)

	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService, log)
	r.GET("/test", diagnosticHandler.Test)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
