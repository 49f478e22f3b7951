// internal/records/filter.go
package records

import (
	"strings"
	"time"
)

// Record é a capacidade comum que Amostra, Analise e Laudo expõem para
// busca, filtragem e agregação.
type Record interface {
	// SearchFields devolve os campos de texto considerados na pesquisa livre.
	SearchFields() []string
	// Category devolve o campo de categoria do registro (cultura ou tipo).
	Category() string
	CurrentStatus() Status
	// ReferenceDate devolve a data de negócio do registro (coleta, análise
	// ou emissão), usada no filtro por período.
	ReferenceDate() time.Time
}

// Criteria agrupa os filtros aplicados sobre uma lista já carregada.
// Campos vazios (ou datas zero) são ignorados; os critérios preenchidos
// são combinados com E lógico.
type Criteria struct {
	Search string
	Tipo   string
	Status Status
	Inicio time.Time
	Fim    time.Time
}

// Filter aplica os critérios sobre a lista em memória, preservando a ordem
// original. Não modifica a lista de entrada; sem critérios, devolve todos
// os registros.
func Filter[T Record](regs []T, c Criteria) []T {
	busca := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]T, 0, len(regs))
	for _, r := range regs {
		if matches(r, c, busca) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, c Criteria, busca string) bool {
	if busca != "" && !matchesSearch(r, busca) {
		return false
	}
	if c.Tipo != "" && r.Category() != c.Tipo {
		return false
	}
	if c.Status != "" && r.CurrentStatus() != c.Status {
		return false
	}
	// Período inclusivo nas duas pontas.
	if !c.Inicio.IsZero() && r.ReferenceDate().Before(c.Inicio) {
		return false
	}
	if !c.Fim.IsZero() && r.ReferenceDate().After(c.Fim) {
		return false
	}
	return true
}

// matchesSearch testa a pesquisa livre como substring, sem diferenciar
// maiúsculas. Basta um dos campos conter o texto.
func matchesSearch(r Record, busca string) bool {
	for _, campo := range r.SearchFields() {
		if strings.Contains(strings.ToLower(campo), busca) {
			return true
		}
	}
	return false
}
