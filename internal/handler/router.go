package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/handler/api"
	"booking-ops-portal/internal/handler/middleware"
	"booking-ops-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, decisionHandler *api.DecisionHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, decisionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h *api.DecisionHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		canDecide := []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapDecideAny, user.CapDecideOwned)}

		applications := apiGroup.Group("/applications")
		addRoutes(applications, []route{
			{Method: http.MethodGet, Path: "", Handler: h.List(decision.KindApplication)},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Get(decision.KindApplication)},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.ApproveApplication, Mw: canDecide},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.RejectApplication, Mw: canDecide},
		})

		formResponses := apiGroup.Group("/form-responses")
		addRoutes(formResponses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.List(decision.KindFormResponse)},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Get(decision.KindFormResponse)},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.ApproveFormResponse, Mw: canDecide},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.RejectFormResponse, Mw: canDecide},
		})

		bookingRequests := apiGroup.Group("/booking-requests")
		addRoutes(bookingRequests, []route{
			{Method: http.MethodGet, Path: "", Handler: h.List(decision.KindBookingRequest)},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Get(decision.KindBookingRequest)},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: h.AcceptBookingRequest, Mw: canDecide},
			{Method: http.MethodPost, Path: "/:id/decline", Handler: h.DeclineBookingRequest, Mw: canDecide},
		})

		addRoutes(apiGroup.Group("/decisions"), []route{
			{Method: http.MethodGet, Path: "/summary", Handler: h.Summary},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
