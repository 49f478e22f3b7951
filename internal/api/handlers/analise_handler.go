// internal/api/handlers/analise_handler.go
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

type AnaliseHandler struct {
	Store store.Store[*models.Analise]
	Hub   *socket.Hub
}

type CreateAnaliseRequest struct {
	Amostra     string `json:"amostra" binding:"required"` // código da amostra, texto livre
	Tipo        string `json:"tipo" binding:"required"`
	Responsavel string `json:"responsavel" binding:"required"`
	Data        string `json:"data" binding:"required"`
}

// CreateAnalise cadastra uma nova análise vinculada (por código) a uma
// amostra. O vínculo não é verificado contra a coleção de amostras.
func (h *AnaliseHandler) CreateAnalise(c *gin.Context) {
	var req CreateAnaliseRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := parseDate(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida, use dd/mm/aaaa"})
		return
	}

	analise := &models.Analise{
		Codigo:      records.Analise.NewCode(time.Now()),
		Amostra:     req.Amostra,
		Tipo:        req.Tipo,
		Responsavel: req.Responsavel,
		Data:        data,
		Status:      records.StatusPendente,
	}

	criada, err := h.Store.Create(c.Request.Context(), analise)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar análise"})
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoCriado, Colecao: "analises", Registro: criada})
	c.JSON(http.StatusCreated, criada)
}

// GetAllAnalises lista as análises com os filtros da query string (busca,
// tipo, status e período).
func (h *AnaliseHandler) GetAllAnalises(c *gin.Context) {
	crit, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analises, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar análises"})
		return
	}

	c.JSON(http.StatusOK, records.Filter(analises, crit))
}

// UpdateStatus move a análise entre PENDENTE e CONCLUÍDA.
func (h *AnaliseHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	analise, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Análise não encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar análise"})
		}
		return
	}

	novo, err := records.Analise.Transition(analise.Status, req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Status inválido para análise", "status": req.Status})
		return
	}
	if novo == analise.Status {
		c.JSON(http.StatusOK, analise)
		return
	}

	atualizada, err := h.Store.Update(c.Request.Context(), id, bson.M{"status": novo})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Análise não encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar análise"})
		}
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoAtualizado, Colecao: "analises", Registro: atualizada})
	c.JSON(http.StatusOK, atualizada)
}

func (h *AnaliseHandler) DeleteAnalise(c *gin.Context) {
	id := c.Param("id")

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Análise não encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao excluir análise"})
		}
		return
	}

	h.Hub.Broadcast(socket.Evento{Tipo: socket.EventoRemovido, Colecao: "analises", ID: id})
	c.JSON(http.StatusOK, gin.H{"message": "Análise excluída com sucesso"})
}

// GetEstatisticas devolve os números dos cards da tela de análises.
func (h *AnaliseHandler) GetEstatisticas(c *gin.Context) {
	analises, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar análises"})
		return
	}

	resumo := records.Aggregate(analises)
	c.JSON(http.StatusOK, gin.H{
		"total":      resumo.Total,
		"pendentes":  resumo.Pendentes,
		"concluidas": resumo.Finalizados,
	})
}
