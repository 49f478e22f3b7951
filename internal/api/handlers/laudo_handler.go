// internal/api/handlers/laudo_handler.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"mel-lab-api-server/internal/models"
	"mel-lab-api-server/internal/records"
	"mel-lab-api-server/internal/socket"
	"mel-lab-api-server/internal/store"
)

// FileUploader abstrai o destino do arquivo do laudo (S3 em produção).
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error)
}

type LaudoHandler struct {
	Store    store.Store[*models.Laudo]
	Hub      *socket.Hub
	Uploader FileUploader
}

type CreateLaudoRequest struct {
	Analise string `json:"analise" binding:"required"` // código da análise, texto livre
	Tipo    string `json:"tipo" binding:"required"`
	Data    string `json:"data" binding:"required"`
}

// CreateLaudo cadastra um novo laudo vinculado (por código) a uma análise.
func (h *LaudoHandler) CreateLaudo(c *gin.Context) {
	var req CreateLaudoRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := parseDate(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida, use dd/mm/aaaa"})
		return
	}

	laudo := &models.Laudo{
		Codigo:  records.Laudo.NewCode(time.Now()),
		Analise: req.Analise,
		Tipo:    req.Tipo,
		Data:    data,
		Status:  records.StatusPendente,
	}

	criado, err := h.Store.Create(c.Request.Context(), laudo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar laudo"})
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoCriado, Colecao: "laudos", Registro: criado})
	c.JSON(http.StatusCreated, criado)
}

// GetAllLaudos lista os laudos com os filtros da query string.
func (h *LaudoHandler) GetAllLaudos(c *gin.Context) {
	crit, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	laudos, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar laudos"})
		return
	}

	c.JSON(http.StatusOK, records.Filter(laudos, crit))
}

// UpdateStatus move o laudo entre PENDENTE e EMITIDO.
func (h *LaudoHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	laudo, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Laudo não encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar laudo"})
		}
		return
	}

	novo, err := records.Laudo.Transition(laudo.Status, req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Status inválido para laudo", "status": req.Status})
		return
	}
	if novo == laudo.Status {
		c.JSON(http.StatusOK, laudo)
		return
	}

	atualizado, err := h.Store.Update(c.Request.Context(), id, bson.M{"status": novo})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Laudo não encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar laudo"})
		}
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoAtualizado, Colecao: "laudos", Registro: atualizado})
	c.JSON(http.StatusOK, atualizado)
}

func (h *LaudoHandler) DeleteLaudo(c *gin.Context) {
	id := c.Param("id")

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Laudo não encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao excluir laudo"})
		}
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoRemovido, Colecao: "laudos", ID: id})
	c.JSON(http.StatusOK, gin.H{"message": "Laudo excluído com sucesso"})
}

// UploadArquivo anexa o documento do laudo (PDF) ao registro e guarda a
// URL resultante no campo arquivoURL.
func (h *LaudoHandler) UploadArquivo(c *gin.Context) {
	id := c.Param("id")

	laudo, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Laudo não encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar laudo"})
		}
		return
	}

	file, header, err := c.Request.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo é obrigatório"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("laudos/%s/%s", laudo.Codigo, filepath.Base(header.Filename))
	url, err := h.Uploader.UploadFile(c.Request.Context(), file, objectKey, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao enviar arquivo", "details": err.Error()})
		return
	}

	atualizado, err := h.Store.Update(c.Request.Context(), id, bson.M{"arquivoURL": url})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar laudo"})
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoAtualizado, Colecao: "laudos", Registro: atualizado})
	c.JSON(http.StatusOK, atualizado)
}

// GetEstatisticas devolve os números dos cards da tela de laudos.
func (h *LaudoHandler) GetEstatisticas(c *gin.Context) {
	laudos, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar laudos"})
		return
	}

	resumo := records.Aggregate(laudos)
	c.JSON(http.StatusOK, gin.H{
		"total":     resumo.Total,
		"pendentes": resumo.Pendentes,
		"emitidos":  resumo.Finalizados,
	})
}
