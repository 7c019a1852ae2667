package router

import (
	"net/http"
	"time"

	healthsvc "stoxify-backend/internal/application/health"
	newssvc "stoxify-backend/internal/application/news"
	portsvc "stoxify-backend/internal/application/portfolio"
	quotessvc "stoxify-backend/internal/application/quotes"
	stocksvc "stoxify-backend/internal/application/stocks"
	usersvc "stoxify-backend/internal/application/user"
	watchsvc "stoxify-backend/internal/application/watchlists"
	authsvc "stoxify-backend/internal/auth"
	"stoxify-backend/internal/config"
	"stoxify-backend/internal/infrastructure/database"
	"stoxify-backend/internal/infrastructure/store"
	authhandler "stoxify-backend/internal/interfaces/handlers/auth"
	healthhandler "stoxify-backend/internal/interfaces/handlers/health"
	newshandler "stoxify-backend/internal/interfaces/handlers/news"
	porthandler "stoxify-backend/internal/interfaces/handlers/portfolio"
	stockhandler "stoxify-backend/internal/interfaces/handlers/stocks"
	userhandler "stoxify-backend/internal/interfaces/handlers/user"
	watchhandler "stoxify-backend/internal/interfaces/handlers/watchlists"
	"stoxify-backend/internal/marketdata"
	"stoxify-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp wires config, stores, provider and routes into a Fiber app.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionHandler, rdb, err := middleware.Session(middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	})
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	hs := &healthsvc.Service{DB: db, Redis: rdb, Started: time.Now()}
	hh := &healthhandler.Handlers{Service: hs, HealthAdminKey: cfg.HealthAdminKey}
	app.Get("/", hh.Root)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/reset", hh.Reset)

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}

	if db != nil {
		as := &authsvc.Service{DB: db}
		ah := &authhandler.Handlers{Service: as, Rdb: rdb, Config: sessionCfg}
		ag := app.Group("/api/v1/auth")
		ag.Post("/login", ah.Login)
		ag.Get("/me", ah.Me)
		ag.Delete("/logout", ah.Logout)

		snapshots := &store.Store{DB: db}
		provider := &marketdata.Fallback{
			Client: marketdata.NewAlphaVantageClient(cfg.AlphaVantageBaseURL, cfg.AlphaVantageAPIKey, cfg.QuoteTimeout),
			Mock:   &marketdata.MockProvider{},
		}

		ps := &portsvc.Service{Store: snapshots}
		ws := &watchsvc.Service{Store: snapshots}
		qs := &quotessvc.Service{Provider: provider, Portfolio: ps, Watchlists: ws}

		ph := &porthandler.Handlers{Service: ps, Quotes: qs}
		pg := app.Group("/api/v1/portfolio", middleware.RequireAuth())
		pg.Get("/", ph.Get)
		pg.Post("/holdings", ph.AddHolding)
		pg.Delete("/holdings/:id", ph.RemoveHolding)
		pg.Post("/refresh", ph.Refresh)
		pg.Delete("/", ph.Reset)

		wh := &watchhandler.Handlers{Service: ws, Quotes: qs}
		wg := app.Group("/api/v1/watchlists", middleware.RequireAuth())
		wg.Get("/", wh.List)
		wg.Post("/", wh.Create)
		wg.Post("/active", wh.SetActive)
		wg.Post("/refresh", wh.Refresh)
		wg.Patch("/:id", wh.Rename)
		wg.Delete("/:id", wh.Delete)
		wg.Post("/:id/items", wh.AddItem)
		wg.Delete("/:id/items/:symbol", wh.RemoveItem)

		ss := &stocksvc.Service{Provider: provider}
		sh := &stockhandler.Handlers{Service: ss}
		sg := app.Group("/api/v1/stocks", middleware.RequireAuth())
		sg.Get("/quote/:symbol", sh.Quote)
		sg.Post("/quotes", sh.Quotes)
		sg.Get("/search", sh.Search)
		sg.Get("/movers", sh.Movers)
		sg.Get("/popular", sh.Popular)
		sg.Get("/indices", sh.Indices)

		ns := &newssvc.Service{Provider: provider}
		nh := &newshandler.Handlers{Service: ns}
		ng := app.Group("/api/v1/news", middleware.RequireAuth())
		ng.Get("/market", nh.Market)
		ng.Get("/tickers", nh.Tickers)

		us := &usersvc.Service{DB: db}
		uh := &userhandler.Handlers{Service: us}
		ug := app.Group("/api/v1/users", middleware.RequireAuth())
		ug.Get("/profile", uh.Profile)
		ug.Put("/profile", uh.UpdateProfile)
		ug.Put("/api-key", uh.SetAPIKey)
		ug.Delete("/api-key", uh.RemoveAPIKey)
	}

	return app, db, rdb, nil
}

// Handler exports the app as net/http for serverless hosts.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
