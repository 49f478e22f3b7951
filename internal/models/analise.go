// internal/models/analise.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mel-lab-api-server/internal/records"
)

// Analise espelha o documento da coleção "analises". O campo Amostra guarda
// o código da amostra como texto livre, sem verificação contra a coleção de
// amostras (comportamento herdado do app).
type Analise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Codigo       string             `bson:"codigo" json:"codigo"`   // e.g., "AN-2024-0001"
	Amostra      string             `bson:"amostra" json:"amostra"` // e.g., "AM-2024-0015"
	Tipo         string             `bson:"tipo" json:"tipo"`       // "Físico-química" ou "Microbiológica"
	Responsavel  string             `bson:"responsavel" json:"responsavel"`
	Data         time.Time          `bson:"data" json:"data"`
	Status       records.Status     `bson:"status" json:"status"`
	CriadoEm     time.Time          `bson:"criadoEm" json:"criadoEm"`
	AtualizadoEm time.Time          `bson:"atualizadoEm" json:"atualizadoEm"`
}

func (a *Analise) SetObjectID(id primitive.ObjectID) { a.ID = id }

func (a *Analise) Stamp(criado, atualizado time.Time) {
	a.CriadoEm = criado
	a.AtualizadoEm = atualizado
}

func (a *Analise) SearchFields() []string        { return []string{a.Codigo, a.Amostra, a.Responsavel} }
func (a *Analise) Category() string              { return a.Tipo }
func (a *Analise) CurrentStatus() records.Status { return a.Status }
func (a *Analise) ReferenceDate() time.Time      { return a.Data }
