package routes

import (
	"database/sql"

	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/handlers"
	"github.com/LovationAdmin/expense-api/middleware"
	"github.com/LovationAdmin/expense-api/repository"
	"github.com/LovationAdmin/expense-api/services"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies are the shared pieces every route group is built from.
type Dependencies struct {
	DB      *sql.DB
	Tokens  *utils.TokenManager
	Cipher  *utils.Cipher // nil disables 2FA
	Events  events.Emitter
	WS      *handlers.WSHandler
	Version string
}

// Setup mounts every route on the router.
func Setup(router *gin.Engine, deps Dependencies) {
	router.GET("/health", handlers.Health(deps.Version))

	v1 := router.Group("/api/v1")
	{
		SetupAuthRoutes(v1, deps)
		if deps.WS != nil {
			v1.GET("/ws", deps.WS.HandleWS)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(deps.Tokens))
		{
			SetupExpenseRoutes(protected, deps)
			SetupBudgetRoutes(protected, deps)
			SetupUserRoutes(protected, deps)
		}
	}
}

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, deps Dependencies) {
	authService := services.NewAuthService(repository.NewUserRepository(deps.DB), deps.Tokens, deps.Cipher)
	h := handlers.NewAuthHandler(authService)

	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

// SetupExpenseRoutes sets up protected expense routes. Static paths are
// registered before /:id so they are never taken for an ID.
func SetupExpenseRoutes(rg *gin.RouterGroup, deps Dependencies) {
	expenses := repository.NewExpenseRepository(deps.DB)
	categorizer := services.NewCategorizer(repository.NewLabelRepository(deps.DB))
	reports := services.NewReportService(expenses, repository.NewBudgetRepository(deps.DB))
	h := handlers.NewExpenseHandler(services.NewExpenseService(expenses, categorizer, deps.Events), reports)

	rg.GET("/expenses/stats", h.GetStats)
	rg.GET("/expenses/categorize", h.SuggestCategory)
	rg.GET("/expenses/insights", h.GetInsights)

	rg.GET("/expenses", h.ListExpenses)
	rg.POST("/expenses", h.CreateExpense)
	rg.PUT("/expenses/:id", h.UpdateExpense)
	rg.DELETE("/expenses/:id", h.DeleteExpense)
}

// SetupBudgetRoutes sets up protected budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, deps Dependencies) {
	budgets := repository.NewBudgetRepository(deps.DB)
	reports := services.NewReportService(repository.NewExpenseRepository(deps.DB), budgets)
	h := handlers.NewBudgetHandler(services.NewBudgetService(budgets, deps.Events), reports)

	rg.GET("/budgets/progress", h.GetProgress)
	rg.GET("/budgets", h.ListBudgets)
	rg.POST("/budgets", h.UpsertBudget)
	rg.DELETE("/budgets/:id", h.DeleteBudget)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, deps Dependencies) {
	h := handlers.NewUserHandler(services.NewUserService(repository.NewUserRepository(deps.DB), deps.Cipher))

	rg.GET("/user/profile", h.GetProfile)
	rg.PUT("/user/profile", h.UpdateProfile)
	rg.POST("/user/password", h.ChangePassword)
	rg.POST("/user/2fa/setup", h.SetupTOTP)
	rg.POST("/user/2fa/verify", h.VerifyTOTP)
	rg.POST("/user/2fa/disable", h.DisableTOTP)
	rg.DELETE("/user/account", h.DeleteAccount)
}
