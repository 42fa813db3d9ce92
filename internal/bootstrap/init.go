package bootstrap

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/internal/adapter"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/controller"
	"CivicPulseAPI/internal/middleware"
	"CivicPulseAPI/internal/repository"
	"CivicPulseAPI/internal/service"
	"CivicPulseAPI/internal/websocket"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Init wires the full request path and starts the event hub. The returned
// hub lets the caller stop delivery on shutdown.
func Init(
	cfg *config.AppConfig,
	client *ent.Client,
	validate *validator.Validate,
	s3Client *s3.Client,
	redisAdapter *adapter.RedisAdapter,
	chiMux *chi.Mux,
) *websocket.Hub {
	storageAdapter := adapter.NewStorageAdapter(cfg, s3Client)

	repo := repository.NewRepository(client, redisAdapter)

	hub := websocket.NewHub(config.NewEventLimiter(cfg))
	go hub.Run()

	trustService := service.NewTrustService(client, cfg, repo.User)
	reportService := service.NewReportService(client, cfg, validate, repo, trustService, storageAdapter, hub)
	voteService := service.NewVoteService(client, cfg, validate, trustService, hub)
	workflowService := service.NewWorkflowService(client, cfg, validate, repo.Department, hub)

	reportController := controller.NewReportController(reportService)
	voteController := controller.NewVoteController(voteService)
	workflowController := controller.NewWorkflowController(workflowService)
	mediaController := controller.NewMediaController(reportService)
	userController := controller.NewUserController(trustService)
	websocketController := controller.NewWebSocketController(hub)

	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(repo.RateLimit, cfg)

	route := NewRoute(
		cfg,
		chiMux,
		authMiddleware,
		rateLimitMiddleware,
		reportController,
		voteController,
		workflowController,
		mediaController,
		userController,
		websocketController,
	)
	route.Register()

	return hub
}
