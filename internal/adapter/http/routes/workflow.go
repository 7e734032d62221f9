package routes

import (
	"grafica_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth       = "/auth"
	PathQuotes     = "/quotes"
	PathProduction = "/production"
	PathProducts   = "/products"
	PathDashboard  = "/dashboard"
	PathEvents     = "/events"
	PathPayments   = "/payments"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}
}

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	productionHandler *handlers.ProductionHandler,
	catalogHandler *handlers.CatalogHandler,
	dashboardHandler *handlers.DashboardHandler,
	scheduleHandler *handlers.ScheduleHandler,
	depositHandler *handlers.DepositPaymentHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/status", quoteHandler.ChangeQuoteStatus)
		quotes.POST("/:id/deposit", depositHandler.ChargeDeposit)
		quotes.GET("/:id/deposit", depositHandler.ListQuoteDeposits)
	}

	production := rg.Group(PathProduction)
	{
		production.GET("/orders", productionHandler.ListOrders)
		production.POST("/orders", productionHandler.CreateOrder)
		production.PATCH("/orders/:id/stage", productionHandler.ChangeStage)
		production.POST("/orders/:id/notes", productionHandler.AddNote)
		production.GET("/board", productionHandler.Board)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.POST("", catalogHandler.AddProduct)
	}

	rg.GET(PathDashboard, dashboardHandler.Summary)

	events := rg.Group(PathEvents)
	{
		events.GET("", scheduleHandler.ListEvents)
		events.POST("", scheduleHandler.AddEvent)
		events.GET("/:id/ics", scheduleHandler.ExportICS)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", depositHandler.GetDepositPayment)
	}
}
