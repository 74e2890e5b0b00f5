package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vitisense/config"
	"vitisense/database"
	"vitisense/router"

	// Auth
	authCtrlImp "vitisense/pkg/auth/controllerImp"

	// Farm
	farmCtrlImp "vitisense/pkg/farm/controllerImp"
	farmRepoImp "vitisense/pkg/farm/repositoryImp"
	farmSvcImp "vitisense/pkg/farm/serviceImp"

	// Flow
	flowSvcImp "vitisense/pkg/flow/serviceImp"

	// Boundary + Dashboard
	boundaryCtrlImp "vitisense/pkg/boundary/controllerImp"
	dashboardCtrlImp "vitisense/pkg/dashboard/controllerImp"

	// Upstream services
	"vitisense/pkg/geocode"
	"vitisense/pkg/upstream"
	"vitisense/pkg/weather"

	// Health
	healthCtrlImp "vitisense/pkg/health/controllerImp"

	"vitisense/pkg/session"
	"vitisense/pkg/view"
)

func main() {
	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	// 4) Geocoding + weather (mock fallback when offline)
	var (
		geo      geocode.Client
		wx       weather.Client
		breakers []*upstream.Client
	)
	if cfg.Offline {
		log.Printf("[cfg] offline: using mock geocode and weather")
		geo = geocode.NewMock()
		wx = weather.NewMock()
	} else {
		settings := upstream.Settings{Timeout: cfg.HTTPTimeout, UserAgent: cfg.UserAgent}
		nominatim := upstream.New("nominatim", settings)
		openMeteo := upstream.New("open-meteo", settings)
		geo = geocode.NewNominatim(cfg.GeocodeEndpoint, nominatim)
		wx = weather.NewOpenMeteo(cfg.WeatherEndpoint, openMeteo)
		breakers = append(breakers, nominatim, openMeteo)
	}

	// 5) Repos/Services
	fRepo := farmRepoImp.New(db)
	fSvc := farmSvcImp.NewFarmService(fRepo)
	flow := flowSvcImp.NewFlowService(fSvc)
	sessions := session.NewStore(cfg.SessionTTL)

	// 6) Controllers
	authCtrl := authCtrlImp.NewAuthController(flow)
	fCtrl := farmCtrlImp.New(flow)
	bCtrl := boundaryCtrlImp.New(flow, geo)
	dCtrl := dashboardCtrlImp.New(flow, wx)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, sessions).WithUpstreams(breakers...)

	// 7) Router
	r := router.New(e, sessions, cfg.CookieSecure, authCtrl, fCtrl, bCtrl, dCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
