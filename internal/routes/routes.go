package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/budget-monitor/internal/handlers"
)

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:3001" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// SetupRouter собирает все маршруты приложения.
func SetupRouter(pool *pgxpool.Pool) *gin.Engine {
	r := gin.Default()
	r.Use(CORSMiddleware())

	r.POST("/register", handlers.RegisterHandler(pool))
	r.POST("/login", handlers.LoginHandler(pool))
	r.GET("/users/:id", handlers.GetUserHandler(pool))
	r.DELETE("/users/:id", handlers.DeleteUserHandler(pool))

	r.POST("/transactions", handlers.CreateTransactionHandler(pool))
	r.GET("/transactions", handlers.ListTransactionsHandler(pool))
	r.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))
	r.POST("/transactions/bulk", handlers.BulkInsertHandler(pool))

	r.POST("/upload/csv", handlers.UploadCSVHandler())
	r.POST("/upload/pdf", handlers.UploadPDFHandler())

	r.GET("/categories", handlers.CategoriesHandler())

	r.GET("/dashboard/summary", handlers.SummaryHandler(pool))
	r.GET("/dashboard/charts/expense_categories", handlers.ExpensePieHandler(pool))
	r.GET("/dashboard/charts/income_expense", handlers.IncomeExpenseChartHandler(pool))

	return r
}
