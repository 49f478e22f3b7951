// internal/records/stats.go
package records

// Resumo é a contagem de registros por status de uma coleção, exibida nos
// cards de estatística das telas e no dashboard.
type Resumo struct {
	Total       int `json:"total"`
	Pendentes   int `json:"pendentes"`
	Finalizados int `json:"finalizados"`
}

// Aggregate conta os registros por status. Finalizados cobre o status
// terminal de cada tipo (CONCLUÍDA ou EMITIDO).
func Aggregate[T Record](regs []T) Resumo {
	r := Resumo{Total: len(regs)}
	for _, reg := range regs {
		if reg.CurrentStatus() == StatusPendente {
			r.Pendentes++
		} else {
			r.Finalizados++
		}
	}
	return r
}
