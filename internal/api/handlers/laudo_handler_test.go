// internal/api/handlers/laudo_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mel-lab-api-server/internal/models"
	"mel-lab-api-server/internal/records"
	"mel-lab-api-server/internal/socket"
	"mel-lab-api-server/internal/store"
)

type fakeLaudoStore struct {
	laudos []*models.Laudo
}

func (f *fakeLaudoStore) Create(ctx context.Context, l *models.Laudo) (*models.Laudo, error) {
	now := time.Now()
	l.Stamp(now, now)
	l.SetObjectID(primitive.NewObjectID())
	f.laudos = append([]*models.Laudo{l}, f.laudos...)
	return l, nil
}

func (f *fakeLaudoStore) List(ctx context.Context) ([]*models.Laudo, error) {
	return f.laudos, nil
}

func (f *fakeLaudoStore) Get(ctx context.Context, id string) (*models.Laudo, error) {
	for _, l := range f.laudos {
		if l.ID.Hex() == id {
			return l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeLaudoStore) Update(ctx context.Context, id string, campos bson.M) (*models.Laudo, error) {
	l, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s, ok := campos["status"].(records.Status); ok {
		l.Status = s
	}
	if url, ok := campos["arquivoURL"].(string); ok {
		l.ArquivoURL = url
	}
	l.AtualizadoEm = time.Now()
	return l, nil
}

func (f *fakeLaudoStore) Delete(ctx context.Context, id string) error {
	for i, l := range f.laudos {
		if l.ID.Hex() == id {
			f.laudos = append(f.laudos[:i], f.laudos[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeUploader registra a última chamada e devolve uma URL previsível.
type fakeUploader struct {
	objectKey string
	conteudo  []byte
}

func (f *fakeUploader) UploadFile(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error) {
	f.objectKey = objectKey
	f.conteudo, _ = io.ReadAll(file)
	return "https://cdn.mellab.com.br/" + objectKey, nil
}

func novoLaudoRouter(s store.Store[*models.Laudo], up FileUploader) *gin.Engine {
	h := &LaudoHandler{Store: s, Hub: socket.NewHub(), Uploader: up}
	r := gin.New()
	r.POST("/laudos", h.CreateLaudo)
	r.GET("/laudos", h.GetAllLaudos)
	r.GET("/laudos/estatisticas", h.GetEstatisticas)
	r.PATCH("/laudos/:id/status", h.UpdateStatus)
	r.DELETE("/laudos/:id", h.DeleteLaudo)
	r.POST("/laudos/:id/arquivo", h.UploadArquivo)
	return r
}

func TestCreateLaudo(t *testing.T) {
	fake := &fakeLaudoStore{}
	r := novoLaudoRouter(fake, &fakeUploader{})

	w := doRequest(r, http.MethodPost, "/laudos", gin.H{
		"analise": "AN-2024-0020",
		"tipo":    "Qualidade",
		"data":    "25/06/2024",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var criado models.Laudo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &criado))
	assert.Regexp(t, `^LD-\d{4}-\d{4}$`, criado.Codigo)
	assert.Equal(t, records.StatusPendente, criado.Status)
	assert.Empty(t, criado.ArquivoURL)
}

func TestCreateLaudoSemAnalise(t *testing.T) {
	fake := &fakeLaudoStore{}
	r := novoLaudoRouter(fake, &fakeUploader{})

	w := doRequest(r, http.MethodPost, "/laudos", gin.H{
		"tipo": "Qualidade",
		"data": "25/06/2024",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Campos []string `json:"campos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"analise"}, resp.Campos)
	assert.Empty(t, fake.laudos)
}

func TestUpdateStatusLaudoParaEmitido(t *testing.T) {
	laudo := &models.Laudo{
		ID:     primitive.NewObjectID(),
		Codigo: "LD-2024-0008",
		Status: records.StatusPendente,
	}
	fake := &fakeLaudoStore{laudos: []*models.Laudo{laudo}}
	r := novoLaudoRouter(fake, &fakeUploader{})

	w := doRequest(r, http.MethodPatch, "/laudos/"+laudo.ID.Hex()+"/status", gin.H{
		"status": "EMITIDO",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, records.StatusEmitido, laudo.Status)
}

func TestUpdateStatusLaudoRejeitaConcluida(t *testing.T) {
	laudo := &models.Laudo{
		ID:     primitive.NewObjectID(),
		Codigo: "LD-2024-0008",
		Status: records.StatusPendente,
	}
	fake := &fakeLaudoStore{laudos: []*models.Laudo{laudo}}
	r := novoLaudoRouter(fake, &fakeUploader{})

	// CONCLUÍDA é o estado final de amostras e análises, não de laudos.
	w := doRequest(r, http.MethodPatch, "/laudos/"+laudo.ID.Hex()+"/status", gin.H{
		"status": "CONCLUÍDA",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, records.StatusPendente, laudo.Status)
}

func TestUploadArquivo(t *testing.T) {
	laudo := &models.Laudo{
		ID:     primitive.NewObjectID(),
		Codigo: "LD-2024-0008",
		Status: records.StatusPendente,
	}
	fake := &fakeLaudoStore{laudos: []*models.Laudo{laudo}}
	up := &fakeUploader{}
	r := novoLaudoRouter(fake, up)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("arquivo", "laudo-final.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 conteudo"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/laudos/"+laudo.ID.Hex()+"/arquivo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "laudos/LD-2024-0008/laudo-final.pdf", up.objectKey)
	assert.Equal(t, []byte("%PDF-1.4 conteudo"), up.conteudo)
	assert.Equal(t, "https://cdn.mellab.com.br/laudos/LD-2024-0008/laudo-final.pdf", laudo.ArquivoURL)
}

func TestUploadArquivoSemArquivo(t *testing.T) {
	laudo := &models.Laudo{
		ID:     primitive.NewObjectID(),
		Codigo: "LD-2024-0008",
	}
	fake := &fakeLaudoStore{laudos: []*models.Laudo{laudo}}
	r := novoLaudoRouter(fake, &fakeUploader{})

	w := doRequest(r, http.MethodPost, "/laudos/"+laudo.ID.Hex()+"/arquivo", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, laudo.ArquivoURL)
}

func TestUploadArquivoLaudoInexistente(t *testing.T) {
	fake := &fakeLaudoStore{}
	r := novoLaudoRouter(fake, &fakeUploader{})

	w := doRequest(r, http.MethodPost, "/laudos/"+primitive.NewObjectID().Hex()+"/arquivo", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEstatisticasLaudos(t *testing.T) {
	fake := &fakeLaudoStore{laudos: []*models.Laudo{
		{ID: primitive.NewObjectID(), Status: records.StatusPendente},
		{ID: primitive.NewObjectID(), Status: records.StatusEmitido},
		{ID: primitive.NewObjectID(), Status: records.StatusEmitido},
	}}
	r := novoLaudoRouter(fake, &fakeUploader{})

	w := doRequest(r, http.MethodGet, "/laudos/estatisticas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp["total"])
	assert.Equal(t, 1, resp["pendentes"])
	assert.Equal(t, 2, resp["emitidos"])
}
