// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mel-lab-api-server/internal/models"
	"mel-lab-api-server/internal/records"
	"mel-lab-api-server/internal/store"
)

type DashboardHandler struct {
	Amostras store.Store[*models.Amostra]
	Analises store.Store[*models.Analise]
	Laudos   store.Store[*models.Laudo]
}

// GetEstatisticas consolida as contagens das três coleções para a tela
// inicial. Percentuais de tendência não são calculados: não há histórico.
func (h *DashboardHandler) GetEstatisticas(c *gin.Context) {
	ctx := c.Request.Context()

	amostras, err := h.Amostras.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar amostras"})
		return
	}
	analises, err := h.Analises.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar análises"})
		return
	}
	laudos, err := h.Laudos.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao consultar laudos"})
		return
	}

	ra := records.Aggregate(amostras)
	rn := records.Aggregate(analises)
	rl := records.Aggregate(laudos)

	c.JSON(http.StatusOK, gin.H{
		"totalRegistros": ra.Total + rn.Total + rl.Total,
		"totalPendentes": ra.Pendentes + rn.Pendentes + rl.Pendentes,
		"amostras":       gin.H{"total": ra.Total, "pendentes": ra.Pendentes, "concluidas": ra.Finalizados},
		"analises":       gin.H{"total": rn.Total, "pendentes": rn.Pendentes, "concluidas": rn.Finalizados},
		"laudos":         gin.H{"total": rl.Total, "pendentes": rl.Pendentes, "emitidos": rl.Finalizados},
	})
}
