package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vending-machine/internal/handler/api"
	"vending-machine/internal/handler/middleware"
	"vending-machine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, machineHandler *api.MachineHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, machineHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, machineHandler *api.MachineHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		m := apiGroup.Group("/machine")
		addRoutes(m, []route{
			{Method: http.MethodGet, Path: "/status", Handler: machineHandler.Status},
			{Method: http.MethodGet, Path: "/statistics", Handler: machineHandler.Statistics},
			{Method: http.MethodPost, Path: "/money", Handler: machineHandler.InsertMoney},
			{Method: http.MethodPost, Path: "/selection", Handler: machineHandler.SelectProduct},
			{Method: http.MethodPost, Path: "/purchase", Handler: machineHandler.Purchase},
			{Method: http.MethodPost, Path: "/cancel", Handler: machineHandler.Cancel},
			{Method: http.MethodPost, Path: "/change", Handler: machineHandler.ReturnChange},
		})

		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "", Handler: machineHandler.ListProducts},
			{Method: http.MethodGet, Path: "/:code/availability", Handler: machineHandler.Availability},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
				{Method: http.MethodPost, Path: "/products", Handler: adminHandler.AddProduct},
				{Method: http.MethodPost, Path: "/products/:code/restock", Handler: adminHandler.RestockProduct},
				{Method: http.MethodPost, Path: "/cash", Handler: adminHandler.AddCash},
				{Method: http.MethodPost, Path: "/cash/refill", Handler: adminHandler.RefillCash},
				{Method: http.MethodGet, Path: "/transactions", Handler: adminHandler.Transactions},
				{Method: http.MethodDelete, Path: "/transactions", Handler: adminHandler.ClearTransactions},
				{Method: http.MethodGet, Path: "/reports/stock", Handler: adminHandler.StockReport},
			})
		}
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
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
