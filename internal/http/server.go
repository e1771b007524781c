// README: API gateway; wires module services into the gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/config"
	"ridedeck/internal/logger"
	"ridedeck/internal/modules/citydata"
	"ridedeck/internal/modules/diagnostic"
	"ridedeck/internal/modules/pricing"
)

type ServerDeps struct {
	CityData   *citydata.Service
	Pricing    *pricing.Service
	Diagnostic *diagnostic.Service
	Log        logger.Logger
	CORS       config.CORSConfig
	GinMode    string
}

type Server struct {
	cityData   *citydata.Service
	pricing    *pricing.Service
	diagnostic *diagnostic.Service
	log        logger.Logger
	cors       config.CORSConfig
	ginMode    string
}

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		cityData:   deps.CityData,
		pricing:    deps.Pricing,
		diagnostic: deps.Diagnostic,
		log:        deps.Log,
		cors:       deps.CORS,
		ginMode:    deps.GinMode,
	}
	if s.cityData == nil {
		s.cityData = citydata.NewService(citydata.NewStore())
	}
	if s.pricing == nil {
		s.pricing = pricing.NewService(pricing.NewStore())
	}
	if s.diagnostic == nil {
		s.diagnostic = diagnostic.NewService(nil, diagnostic.Settings{})
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if len(s.cors.Origins) == 0 {
		s.cors.Origins = []string{"*"}
	}
	return s
}

func (s *Server) Routes() http.Handler {
	if s.ginMode != "" {
		gin.SetMode(s.ginMode)
	}
	return NewRouter(s.cityData, s.pricing, s.diagnostic, s.log, s.cors)
}
