package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/classifier"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/config"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/handler"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/middleware"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/notify"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/repository"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/service"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/session"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/web"
)

// Deps are the collaborators the HTTP layer is built on.
type Deps struct {
	Sessions   session.Store
	Users      repository.UserRepository
	Notifier   notify.Notifier
	Classifier *classifier.Classifier
}

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	deps   Deps
	logger *zap.Logger
	srv    *http.Server
}

func NewServer(cfg *config.Config, deps Deps, logger *zap.Logger) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.HTMLRender = renderer
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), cors.New(corsConfig(cfg.Server.AllowOrigins)))

	s := &Server{
		router: router,
		cfg:    cfg,
		deps:   deps,
		logger: logger,
	}
	s.setupRoutes()

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func (s *Server) setupRoutes() {
	classify := s.deps.Classifier
	if classify == nil {
		classify = classifier.New(nil)
	}

	analysisService := service.NewAnalysisService(classify, s.logger)
	demoService := service.NewDemoService(s.deps.Notifier, s.logger)
	authService := service.NewAuthService(s.deps.Users, s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL, s.logger)
	settingsService := service.NewSettingsService(s.deps.Users, s.logger)

	pageHandler := handler.NewPageHandler(s.logger)
	analysisHandler := handler.NewAnalysisHandler(analysisService, s.cfg.MaxUploadBytes(), s.logger)
	demoHandler := handler.NewDemoHandler(demoService, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, pageHandler, s.logger)

	s.router.GET("/health", pageHandler.Health)

	site := s.router.Group("/")
	site.Use(middleware.SessionMiddleware(s.deps.Sessions, s.cfg.Session.TTL, s.cfg.Server.SecureCookie, s.logger))
	{
		site.GET("/", pageHandler.Page(web.PageHome))
		site.GET("/demo", pageHandler.Page(web.PageDemo))
		site.GET("/dashboard", pageHandler.Page(web.PageDashboard))
		site.GET("/partners", pageHandler.Page(web.PagePartners))
		site.GET("/contact", pageHandler.Page(web.PageContact))
		site.GET("/auth/signin", pageHandler.Page(web.PageSignIn))
		site.GET("/auth/signup", pageHandler.Page(web.PageSignUp))
		site.GET("/settings", settingsHandler.SettingsPage)
	}

	api := site.Group("/api")
	{
		api.POST("/analyze-accident", analysisHandler.AnalyzeAccident)
		api.POST("/inspect-media", analysisHandler.InspectMedia)
		api.POST("/dispatch", demoHandler.Dispatch)
		api.POST("/emergency", demoHandler.Emergency)

		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/signin", authHandler.SignIn)
		api.POST("/auth/signout", authHandler.SignOut)
	}

	authRequired := api.Group("/")
	authRequired.Use(middleware.AuthMiddleware(authService, s.logger))
	{
		authRequired.GET("/settings", settingsHandler.GetSettings)
		authRequired.PUT("/settings", settingsHandler.UpdateSettings)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks serving HTTP until Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("Server starting", zap.String("address", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
