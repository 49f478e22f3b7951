// internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mel-lab-api-server/internal/auth"
	"mel-lab-api-server/internal/models"
)

// SeedAdmin garante que o usuário administrador padrão exista na coleção
// "usuarios". A senha padrão deve ser trocada no primeiro acesso.
func SeedAdmin(db *mongo.Database) error {
	usuarios := db.Collection("usuarios")
	adminEmail := "admin@mellab.com.br"

	count, err := usuarios.CountDocuments(context.Background(), bson.M{"email": adminEmail})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Usuário admin já existe. Seed ignorado.")
		return nil
	}

	log.Println("Usuário admin não encontrado. Criando...")
	hashedPassword, err := auth.HashPassword("mudar123")
	if err != nil {
		return err
	}

	admin := models.Usuario{
		Nome:     "Administrador",
		Email:    adminEmail,
		Senha:    hashedPassword,
		CriadoEm: time.Now(),
	}

	_, err = usuarios.InsertOne(context.Background(), admin)
	if err != nil {
		return err
	}

	log.Println("Usuário admin criado com sucesso.")
	return nil
}
