package bootstrap

import (
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/controller"
	"CivicPulseAPI/internal/middleware"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg                 *config.AppConfig
	chi                 *chi.Mux
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	reportController    *controller.ReportController
	voteController      *controller.VoteController
	workflowController  *controller.WorkflowController
	mediaController     *controller.MediaController
	userController      *controller.UserController
	websocketController *controller.WebSocketController
}

func NewRoute(
	cfg *config.AppConfig,
	chi *chi.Mux,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	reportController *controller.ReportController,
	voteController *controller.VoteController,
	workflowController *controller.WorkflowController,
	mediaController *controller.MediaController,
	userController *controller.UserController,
	websocketController *controller.WebSocketController,
) *Route {
	return &Route{
		cfg:                 cfg,
		chi:                 chi,
		authMiddleware:      authMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		reportController:    reportController,
		voteController:      voteController,
		workflowController:  workflowController,
		mediaController:     mediaController,
		userController:      userController,
		websocketController: websocketController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to CivicPulseAPI"))
	})

	route.chi.Route("/api", func(r chi.Router) {
		// Public reads; a token widens visibility but is not required.
		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyTokenOptional)

			r.Get("/reports", route.reportController.ListReports)
			r.Get("/reports/search", route.reportController.SearchReports)
			r.Get("/reports/nearby", route.reportController.NearbyReports)
			r.Get("/reports/analytics", route.reportController.GetAnalytics)
			r.Get("/reports/{id}", route.reportController.GetReport)
			r.Get("/users/{id}", route.userController.GetProfile)
		})

		// Citizen writes.
		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)

			r.With(route.rateLimitMiddleware.Limit("report_create", route.cfg.ReportRateLimitPerHour, time.Hour)).
				Post("/reports", route.reportController.CreateReport)
			r.With(route.rateLimitMiddleware.Limit("vote", route.cfg.VoteRateLimitPerMinute, time.Minute)).
				Post("/reports/{id}/votes", route.voteController.CastVote)

			r.Post("/reports/{id}/comments", route.reportController.AddComment)
			r.Post("/reports/{id}/media", route.mediaController.UploadMedia)
			r.Delete("/reports/{id}/media", route.mediaController.DeleteMedia)
		})

		// Workflow routes are staff-only.
		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)
			r.Use(route.authMiddleware.RequireStaff)

			r.Patch("/reports/{id}/status", route.workflowController.TransitionStatus)
			r.Post("/reports/{id}/duplicate", route.workflowController.LinkDuplicate)
			r.Patch("/reports/{id}/featured", route.reportController.SetFeatured)
			r.Patch("/reports/{id}/visibility", route.reportController.SetVisibility)
		})
	})

	route.chi.Group(func(r chi.Router) {
		r.Use(route.authMiddleware.VerifyWSToken)
		r.Get("/ws", route.websocketController.ServeWS)
	})
}
