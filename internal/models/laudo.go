// internal/models/laudo.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mel-lab-api-server/internal/records"
)

// Laudo espelha o documento da coleção "laudos". Analise referencia o
// código da análise como texto livre. ArquivoURL aponta para o documento
// do laudo no S3 quando já houve upload.
type Laudo struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Codigo       string             `bson:"codigo" json:"codigo"`   // e.g., "LD-2024-0038"
	Analise      string             `bson:"analise" json:"analise"` // e.g., "AN-2024-0042"
	Tipo         string             `bson:"tipo" json:"tipo"`       // "Físico-Químico", "Microbiológico" ou "Completo"
	Data         time.Time          `bson:"data" json:"data"`
	ArquivoURL   string             `bson:"arquivoURL,omitempty" json:"arquivoURL,omitempty"`
	Status       records.Status     `bson:"status" json:"status"`
	CriadoEm     time.Time          `bson:"criadoEm" json:"criadoEm"`
	AtualizadoEm time.Time          `bson:"atualizadoEm" json:"atualizadoEm"`
}

func (l *Laudo) SetObjectID(id primitive.ObjectID) { l.ID = id }

func (l *Laudo) Stamp(criado, atualizado time.Time) {
	l.CriadoEm = criado
	l.AtualizadoEm = atualizado
}

func (l *Laudo) SearchFields() []string        { return []string{l.Codigo, l.Analise} }
func (l *Laudo) Category() string              { return l.Tipo }
func (l *Laudo) CurrentStatus() records.Status { return l.Status }
func (l *Laudo) ReferenceDate() time.Time      { return l.Data }
