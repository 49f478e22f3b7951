// cmd/api/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"mel-lab-api-server/config"
	"mel-lab-api-server/internal/api/routes"
	"mel-lab-api-server/internal/database"
	"mel-lab-api-server/internal/s3"
	"mel-lab-api-server/internal/socket"
)

func main() {
	// 1. Carregar o .env (opcional em produção)
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	// 2. Carregar configuração
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Não foi possível carregar a configuração: %v", err)
	}

	// 3. Conectar ao MongoDB
	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Falha ao conectar ao banco: %v", err)
	}

	// 4. Garantir o usuário administrador padrão
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Falha ao criar o usuário admin: %v", err)
	}

	// 5. Uploader S3 para os arquivos de laudo
	uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Falha ao inicializar o uploader S3: %v", err)
	}

	// 6. Hub de notificações em tempo real
	hub := socket.NewHub()

	// 7. Montar o router e subir o servidor
	router := routes.SetupRouter(db, cfg, uploader, hub)
	log.Printf("Servidor iniciado na porta %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Falha ao iniciar o servidor: %v", err)
	}
}
