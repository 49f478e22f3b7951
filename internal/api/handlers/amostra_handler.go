// internal/api/handlers/amostra_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"mel-lab-api-server/internal/models"
	"mel-lab-api-server/internal/records"
	"mel-lab-api-server/internal/socket"
	"mel-lab-api-server/internal/store"
)

type AmostraHandler struct {
	Store store.Store[*models.Amostra]
	Hub   *socket.Hub
}

type CreateAmostraRequest struct {
	DataColeta string `json:"dataColeta" binding:"required"`
	Origem     string `json:"origem" binding:"required"`
	Cultura    string `json:"cultura" binding:"required"`
	Abelha     string `json:"abelha" binding:"required"`
}

type UpdateStatusRequest struct {
	Status records.Status `json:"status" binding:"required"`
}

// CreateAmostra cadastra uma nova amostra. O código é gerado no servidor e
// o status inicial é sempre PENDENTE.
func (h *AmostraHandler) CreateAmostra(c *gin.Context) {
	var req CreateAmostraRequest
	if !bindJSON(c, &req) {
		return
	}

	dataColeta, err := parseDate(req.DataColeta)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data de coleta inválida, use dd/mm/aaaa"})
		return
	}

	amostra := &models.Amostra{
		Codigo:     records.Amostra.NewCode(time.Now()),
		DataColeta: dataColeta,
		Origem:     req.Origem,
		Cultura:    req.Cultura,
		Abelha:     req.Abelha,
		Status:     records.StatusPendente,
	}

	criada, err := h.Store.Create(c.Request.Context(), amostra)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar amostra"})
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoCriado, Colecao: "amostras", Registro: criada})
	c.JSON(http.StatusCreated, criada)
}

// GetAllAmostras lista as amostras, mais recentes primeiro, aplicando os
// filtros da query string sobre o resultado.
func (h *AmostraHandler) GetAllAmostras(c *gin.Context) {
	crit, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amostras, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar amostras"})
		return
	}

	c.JSON(http.StatusOK, records.Filter(amostras, crit))
}

// UpdateStatus move a amostra entre PENDENTE e CONCLUÍDA. Qualquer outro
// valor é rejeitado.
func (h *AmostraHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	amostra, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Amostra não encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar amostra"})
		}
		return
	}

	novo, err := records.Amostra.Transition(amostra.Status, req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Status inválido para amostra", "status": req.Status})
		return
	}
	if novo == amostra.Status {
		c.JSON(http.StatusOK, amostra)
		return
	}

	atualizada, err := h.Store.Update(c.Request.Context(), id, bson.M{"status": novo})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Amostra não encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar amostra"})
		}
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoAtualizado, Colecao: "amostras", Registro: atualizada})
	c.JSON(http.StatusOK, atualizada)
}

// DeleteAmostra exclui a amostra em definitivo. Análises que referenciam o
// código excluído não são tocadas.
func (h *AmostraHandler) DeleteAmostra(c *gin.Context) {
	id := c.Param("id")

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Amostra não encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao excluir amostra"})
		}
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoRemovido, Colecao: "amostras", ID: id})
	c.JSON(http.StatusOK, gin.H{"message": "Amostra excluída com sucesso"})
}

// GetEstatisticas devolve os números dos cards da tela de amostras.
func (h *AmostraHandler) GetEstatisticas(c *gin.Context) {
	amostras, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar amostras"})
		return
	}

	resumo := records.Aggregate(amostras)
	c.JSON(http.StatusOK, gin.H{
		"total":      resumo.Total,
		"pendentes":  resumo.Pendentes,
		"concluidas": resumo.Finalizados,
	})
}
