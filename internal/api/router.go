package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloodlink/coordination-api/docs"
	"github.com/bloodlink/coordination-api/internal/api/handler"
	"github.com/bloodlink/coordination-api/internal/api/middleware"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo is nil when
// the in-memory backend is active; Redis is nil when caching is
// disabled. Both are only used by the readiness probe.
type Dependencies struct {
	Auth        ports.AuthService
	Accounts    ports.AccountService
	Banks       ports.BankService
	Campaigns   ports.CampaignService
	SOS         ports.SOSService
	Leaderboard ports.LeaderboardService
	Awareness   ports.AwarenessService
	Chatbot     ports.ChatbotService

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("bloodlink"))

	authRequired := middleware.Auth(deps.Auth)
	adminOnly := middleware.AdminOnly()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	accountHandler := handler.NewAccountHandler(deps.Accounts, deps.Leaderboard)
	donorHandler := handler.NewDonorHandler(deps.Accounts)
	bankHandler := handler.NewBankHandler(deps.Banks)
	campaignHandler := handler.NewCampaignHandler(deps.Campaigns)
	sosHandler := handler.NewSOSHandler(deps.SOS)
	leaderboardHandler := handler.NewLeaderboardHandler(deps.Leaderboard)
	awarenessHandler := handler.NewAwarenessHandler(deps.Awareness, deps.Accounts)
	chatbotHandler := handler.NewChatbotHandler(deps.Chatbot)

	// --- Auth & account lifecycle ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/auth/profile/:id", accountHandler.GetProfile, authRequired)
	e.PUT("/auth/profile/:id", accountHandler.UpdateProfile, authRequired)
	e.PUT("/auth/change-password/:id", accountHandler.ChangePassword, authRequired)
	e.PUT("/auth/register-donor/:id", accountHandler.RegisterDonor, authRequired)
	e.POST("/auth/medical-record/:id", accountHandler.AddMedicalRecord, authRequired, adminOnly)
	e.GET("/auth/all", accountHandler.ListAccounts, authRequired, adminOnly)
	e.GET("/auth/donors", accountHandler.ListDonors, authRequired, adminOnly)
	e.GET("/auth/donors-public", donorHandler.ListPublic)

	// --- Donations ---
	e.POST("/donations/:id", accountHandler.RecordDonation, authRequired, adminOnly)

	// --- Public donor directory & intake ---
	e.GET("/donors", donorHandler.ListPublic)
	e.POST("/donors", donorHandler.Enroll)

	// --- Blood banks ---
	e.GET("/banks", bankHandler.List)
	e.GET("/banks/:id", bankHandler.Get)
	e.POST("/banks", bankHandler.Create, authRequired, adminOnly)
	e.POST("/banks/:id/campaigns", bankHandler.AddCampaign, authRequired, adminOnly)

	// --- Campaigns ---
	e.GET("/campaigns", campaignHandler.List)
	e.GET("/campaigns/:id", campaignHandler.Get)
	e.POST("/campaigns", campaignHandler.Create, authRequired, adminOnly)
	e.PUT("/campaigns/:id", campaignHandler.Update, authRequired, adminOnly)
	e.DELETE("/campaigns/:id", campaignHandler.Delete, authRequired, adminOnly)

	// --- SOS ---
	e.POST("/sos", sosHandler.Create)
	e.GET("/sos", sosHandler.List, authRequired, adminOnly)

	// --- Leaderboard ---
	e.GET("/leaderboard", leaderboardHandler.Top)

	// --- Awareness feed ---
	e.GET("/awareness", awarenessHandler.List)
	e.GET("/awareness/:id", awarenessHandler.Get)
	e.POST("/awareness", awarenessHandler.Create, authRequired)
	e.PUT("/awareness/:id", awarenessHandler.Update, authRequired)
	e.DELETE("/awareness/:id", awarenessHandler.Delete, authRequired)
	e.PUT("/awareness/:id/like", awarenessHandler.ToggleLike, authRequired)

	// --- Chatbot ---
	e.POST("/chatbot", chatbotHandler.Message)
	e.GET("/chatbot/health", chatbotHandler.Health)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
