// internal/api/handlers/user_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mel-lab-api-server/config"
	"mel-lab-api-server/internal/auth"
	"mel-lab-api-server/internal/models"
)

type UserHandler struct {
	DB  *mongo.Database
	Cfg config.Config
}

type RegisterRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// Register cria um usuário novo com a senha armazenada como hash bcrypt.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	collection := h.DB.Collection("usuarios")

	count, err := collection.CountDocuments(context.Background(), bson.M{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar usuário"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Já existe um usuário com este email"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Senha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao processar a senha"})
		return
	}

	novoUsuario := models.Usuario{
		Nome:     req.Nome,
		Email:    req.Email,
		Senha:    hashedPassword,
		CriadoEm: time.Now(),
	}

	result, err := collection.InsertOne(context.Background(), novoUsuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar usuário"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		novoUsuario.ID = oid
	}

	c.JSON(http.StatusCreated, novoUsuario)
}

// Login confere email e senha e emite o token de acesso.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	collection := h.DB.Collection("usuarios")

	var usuario models.Usuario
	err := collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Mesma mensagem para email inexistente e senha errada.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar usuário"})
		}
		return
	}

	if !auth.CheckPasswordHash(req.Senha, usuario.Senha) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	token, err := auth.GenerateJWT(usuario.Email, usuario.Nome, []byte(h.Cfg.JWT.Secret), h.Cfg.JWT.ExpirationDuration())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "usuario": usuario})
}
