// internal/api/handlers/filters.go
package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mel-lab-api-server/internal/records"
)

// As datas circulam pela API no formato pt-BR, igual às telas do app.
const dateLayout = "02/01/2006"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// parseCriteria monta os critérios de filtragem a partir da query string:
// busca, tipo, status, inicio e fim.
func parseCriteria(c *gin.Context) (records.Criteria, error) {
	crit := records.Criteria{
		Search: c.Query("busca"),
		Tipo:   c.Query("tipo"),
		Status: records.Status(c.Query("status")),
	}

	if v := c.Query("inicio"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return crit, fmt.Errorf("data de início inválida: %q, use dd/mm/aaaa", v)
		}
		crit.Inicio = t
	}
	if v := c.Query("fim"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return crit, fmt.Errorf("data de fim inválida: %q, use dd/mm/aaaa", v)
		}
		crit.Fim = t
	}

	return crit, nil
}
