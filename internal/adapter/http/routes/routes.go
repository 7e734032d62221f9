package routes

import (
	"context"
	"log"
	"os"
	"time"

	"grafica_gestao/internal/adapter/http/handlers"
	repository2 "grafica_gestao/internal/adapter/persistence/repository"
	"grafica_gestao/internal/infrastructure/database"
	"grafica_gestao/internal/infrastructure/observability"
	"grafica_gestao/internal/infrastructure/payments"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var router = gin.Default()

// Run wires the storage, payment and HTTP layers together and starts the
// server. It blocks until the server stops.
func Run() {
	logger := observability.NewLogger(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	metrics := observability.NewMetrics()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	getRoutes(logger, metrics)

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(logger *zap.Logger, metrics *observability.Metrics) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		logger.Fatal("failed to connect to DynamoDB", zap.Error(err))
	}

	store := repository2.NewCollectionStore(ddb, logger)
	if err := store.EnsureSeedData(ctx); err != nil {
		logger.Fatal("failed to seed baseline data", zap.Error(err))
	}

	productRepo := repository2.NewProductDynamoRepository(store)
	quoteRepo := repository2.NewQuoteDynamoRepository(store)
	orderRepo := repository2.NewProductionOrderDynamoRepository(store)
	eventRepo := repository2.NewCalendarEventDynamoRepository(store)
	sessionRepo := repository2.NewSessionDynamoRepository(store)
	depositRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	productionUseCase := usecase.NewProductionUseCase(orderRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(quoteRepo)
	scheduleUseCase := usecase.NewScheduleUseCase(eventRepo)
	authUseCase := usecase.NewAuthUseCase(sessionRepo, authConfigFromEnv(logger), logger)
	depositUseCase := usecase.NewDepositPaymentUseCase(depositRepo, quoteRepo, paymentGateway, logger)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, catalogUseCase, metrics)
	productionHandler := handlers.NewProductionHandler(productionUseCase, metrics)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase, metrics)
	depositHandler := handlers.NewDepositPaymentHandler(depositUseCase, metrics)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	protected := v1.Group("")
	protected.Use(handlers.RequireAuth(authUseCase))
	addWorkflowRoutes(protected, quoteHandler, productionHandler, catalogHandler, dashboardHandler, scheduleHandler, depositHandler)
}

// authConfigFromEnv builds the fixed-credential auth config. The password
// hash is derived at startup so the plaintext never lives in the binary.
func authConfigFromEnv(logger *zap.Logger) usecase.AuthConfig {
	password := getenvDefault("ADMIN_PASSWORD", "admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}

	return usecase.AuthConfig{
		AdminEmail:        getenvDefault("ADMIN_EMAIL", "admin@gestao.com"),
		AdminName:         getenvDefault("ADMIN_NAME", "Wesley Oliveira"),
		AdminPasswordHash: hash,
		JWTSecret:         []byte(getenvDefault("JWT_SECRET", "dev-secret-change-me")),
		TokenTTL:          12 * time.Hour,
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
