// internal/models/usuario.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Usuario espelha o documento da coleção "usuarios". A senha nunca sai
// na resposta da API.
type Usuario struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome     string             `bson:"nome" json:"nome"`
	Email    string             `bson:"email" json:"email"`
	Senha    string             `bson:"senha" json:"-"`
	CriadoEm time.Time          `bson:"criadoEm" json:"criadoEm"`
}
