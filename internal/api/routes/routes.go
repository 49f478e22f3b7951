// internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"mel-lab-api-server/config"
	"mel-lab-api-server/internal/api/handlers"
	"mel-lab-api-server/internal/api/middleware"
	"mel-lab-api-server/internal/models"
	"mel-lab-api-server/internal/s3"
	"mel-lab-api-server/internal/socket"
	"mel-lab-api-server/internal/store"
)

// SetupRouter recebe as dependências e monta todas as rotas da API.
func SetupRouter(
	db *mongo.Database,
	cfg config.Config,
	uploader *s3.Uploader,
	hub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	secret := []byte(cfg.JWT.Secret)

	// Um repositório por coleção; o dashboard reaproveita os três.
	amostras := store.NewRepository[models.Amostra, *models.Amostra](db, "amostras")
	analises := store.NewRepository[models.Analise, *models.Analise](db, "analises")
	laudos := store.NewRepository[models.Laudo, *models.Laudo](db, "laudos")

	amostraHandler := &handlers.AmostraHandler{Store: amostras, Hub: hub}
	analiseHandler := &handlers.AnaliseHandler{Store: analises, Hub: hub}
	laudoHandler := &handlers.LaudoHandler{Store: laudos, Hub: hub, Uploader: uploader}
	dashboardHandler := &handlers.DashboardHandler{Amostras: amostras, Analises: analises, Laudos: laudos}
	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	webSocketHandler := &handlers.WebSocketHandler{Hub: hub, Secret: secret}

	apiV1 := router.Group("/api/v1")
	{
		// Rota WebSocket (autentica pelo token na query string)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === ROTAS SEM AUTENTICAÇÃO ===
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
		}

		// === ROTAS PROTEGIDAS ===
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(secret))
		{
			amostrasGroup := protected.Group("/amostras")
			{
				amostrasGroup.GET("", amostraHandler.GetAllAmostras)
				amostrasGroup.POST("", amostraHandler.CreateAmostra)
				amostrasGroup.GET("/estatisticas", amostraHandler.GetEstatisticas)
				amostrasGroup.PATCH("/:id/status", amostraHandler.UpdateStatus)
				amostrasGroup.DELETE("/:id", amostraHandler.DeleteAmostra)
			}

			analisesGroup := protected.Group("/analises")
			{
				analisesGroup.GET("", analiseHandler.GetAllAnalises)
				analisesGroup.POST("", analiseHandler.CreateAnalise)
				analisesGroup.GET("/estatisticas", analiseHandler.GetEstatisticas)
				analisesGroup.PATCH("/:id/status", analiseHandler.UpdateStatus)
				analisesGroup.DELETE("/:id", analiseHandler.DeleteAnalise)
			}

			laudosGroup := protected.Group("/laudos")
			{
				laudosGroup.GET("", laudoHandler.GetAllLaudos)
				laudosGroup.POST("", laudoHandler.CreateLaudo)
				laudosGroup.GET("/estatisticas", laudoHandler.GetEstatisticas)
				laudosGroup.PATCH("/:id/status", laudoHandler.UpdateStatus)
				laudosGroup.POST("/:id/arquivo", laudoHandler.UploadArquivo)
				laudosGroup.DELETE("/:id", laudoHandler.DeleteLaudo)
			}

			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/estatisticas", dashboardHandler.GetEstatisticas)
			}
		}
	}

	return router
}
