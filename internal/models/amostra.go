// internal/models/amostra.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mel-lab-api-server/internal/records"
)

// Amostra espelha o documento da coleção "amostras".
type Amostra struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Codigo       string             `bson:"codigo" json:"codigo"`         // e.g., "AM-2024-0015"
	DataColeta   time.Time          `bson:"dataColeta" json:"dataColeta"`
	Origem       string             `bson:"origem" json:"origem"`   // e.g., "São Paulo - SP\nProdutor: Fazenda do Mel"
	Cultura      string             `bson:"cultura" json:"cultura"` // "Apicultura" ou "Agricultura"
	Abelha       string             `bson:"abelha" json:"abelha"`   // e.g., "Apis mellifera", "Jataí"
	Status       records.Status     `bson:"status" json:"status"`
	CriadoEm     time.Time          `bson:"criadoEm" json:"criadoEm"`
	AtualizadoEm time.Time          `bson:"atualizadoEm" json:"atualizadoEm"`
}

func (a *Amostra) SetObjectID(id primitive.ObjectID) { a.ID = id }

func (a *Amostra) Stamp(criado, atualizado time.Time) {
	a.CriadoEm = criado
	a.AtualizadoEm = atualizado
}

func (a *Amostra) SearchFields() []string        { return []string{a.Codigo, a.Origem} }
func (a *Amostra) Category() string              { return a.Cultura }
func (a *Amostra) CurrentStatus() records.Status { return a.Status }
func (a *Amostra) ReferenceDate() time.Time      { return a.DataColeta }
