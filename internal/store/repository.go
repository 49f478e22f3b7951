// internal/store/repository.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound indica que o id não corresponde a nenhum documento da coleção.
var ErrNotFound = errors.New("registro não encontrado")

// Doc é o contrato mínimo de um documento persistido: o repositório precisa
// gravar o _id gerado pelo banco e carimbar os timestamps de auditoria.
type Doc interface {
	SetObjectID(primitive.ObjectID)
	Stamp(criado, atualizado time.Time)
}

// Store é a interface que os handlers consomem. Eles nunca tocam o client
// do Mongo diretamente.
type Store[P any] interface {
	Create(ctx context.Context, rec P) (P, error)
	List(ctx context.Context) ([]P, error)
	Get(ctx context.Context, id string) (P, error)
	Update(ctx context.Context, id string, campos bson.M) (P, error)
	Delete(ctx context.Context, id string) error
}

// Repository implementa Store sobre uma coleção do MongoDB. T é o tipo do
// documento (Amostra, Analise, Laudo) e P o ponteiro correspondente.
type Repository[T any, P interface {
	*T
	Doc
}] struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewRepository[T any, P interface {
	*T
	Doc
}](db *mongo.Database, collection string) *Repository[T, P] {
	return &Repository[T, P]{coll: db.Collection(collection), now: time.Now}
}

// Create carimba criadoEm/atualizadoEm, insere o documento e devolve o
// registro já com o _id gerado pelo banco.
func (r *Repository[T, P]) Create(ctx context.Context, rec P) (P, error) {
	now := r.now()
	rec.Stamp(now, now)

	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return rec, fmt.Errorf("falha ao inserir documento: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.SetObjectID(oid)
	}
	return rec, nil
}

// List devolve todos os documentos da coleção ordenados por criadoEm
// decrescente (mais recentes primeiro). É uma leitura pontual, não uma
// assinatura: escritas de outros clientes só aparecem em uma nova chamada.
func (r *Repository[T, P]) List(ctx context.Context) ([]P, error) {
	opts := options.Find().SetSort(bson.D{{Key: "criadoEm", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar coleção: %w", err)
	}
	defer cursor.Close(ctx)

	regs := []P{}
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, fmt.Errorf("falha ao decodificar documentos: %w", err)
	}
	return regs, nil
}

func (r *Repository[T, P]) Get(ctx context.Context, id string) (P, error) {
	var zero P

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, ErrNotFound
	}

	var rec T
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("falha ao consultar documento: %w", err)
	}
	return P(&rec), nil
}

// Update aplica um $set parcial e renova atualizadoEm, devolvendo o
// documento já atualizado.
func (r *Repository[T, P]) Update(ctx context.Context, id string, campos bson.M) (P, error) {
	var zero P

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, ErrNotFound
	}

	set := bson.M{"atualizadoEm": r.now()}
	for k, v := range campos {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec T
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("falha ao atualizar documento: %w", err)
	}
	return P(&rec), nil
}

// Delete remove o documento em definitivo. Não há soft-delete nem remoção
// em cascata de registros que referenciam o código excluído.
func (r *Repository[T, P]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("falha ao excluir documento: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
