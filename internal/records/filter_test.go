// internal/records/filter_test.go
package records_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mel-lab-api-server/internal/models"
	"mel-lab-api-server/internal/records"
)

func data(dia, mes int) time.Time {
	return time.Date(2024, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

func amostrasDeTeste() []*models.Amostra {
	return []*models.Amostra{
		{
			Codigo:     "AM-2024-0015",
			Origem:     "São Paulo - SP\nProdutor: Fazenda do Mel",
			Cultura:    "Apicultura",
			DataColeta: data(15, 6),
			Status:     records.StatusConcluida,
		},
		{
			Codigo:     "AM-2024-0016",
			Origem:     "Minas Gerais - MG\nProdutor: Apiários do Brasil",
			Cultura:    "Apicultura",
			DataColeta: data(18, 6),
			Status:     records.StatusPendente,
		},
		{
			Codigo:     "AM-2024-0017",
			Origem:     "Paraná - PR",
			Cultura:    "Agricultura",
			DataColeta: data(2, 7),
			Status:     records.StatusPendente,
		},
	}
}

func TestFilterSemCriteriosDevolveTudoNaOrdem(t *testing.T) {
	amostras := amostrasDeTeste()

	out := records.Filter(amostras, records.Criteria{})

	require.Len(t, out, len(amostras))
	for i := range amostras {
		assert.Same(t, amostras[i], out[i])
	}
}

func TestFilterBuscaCaseInsensitive(t *testing.T) {
	amostras := amostrasDeTeste()

	// "sp" deve casar com "São Paulo - SP" por substring.
	out := records.Filter(amostras, records.Criteria{Search: "sp"})

	require.Len(t, out, 1)
	assert.Equal(t, "AM-2024-0015", out[0].Codigo)
}

func TestFilterBuscaEmQualquerCampo(t *testing.T) {
	amostras := amostrasDeTeste()

	// Casa tanto pelo código quanto pela origem.
	porCodigo := records.Filter(amostras, records.Criteria{Search: "0016"})
	require.Len(t, porCodigo, 1)
	assert.Equal(t, "AM-2024-0016", porCodigo[0].Codigo)

	porOrigem := records.Filter(amostras, records.Criteria{Search: "apiários"})
	require.Len(t, porOrigem, 1)
	assert.Equal(t, "AM-2024-0016", porOrigem[0].Codigo)
}

func TestFilterCombinaCriteriosComE(t *testing.T) {
	amostras := amostrasDeTeste()

	out := records.Filter(amostras, records.Criteria{
		Tipo:   "Apicultura",
		Status: records.StatusPendente,
	})

	require.Len(t, out, 1)
	assert.Equal(t, "AM-2024-0016", out[0].Codigo)
}

func TestFilterPeriodoInclusivo(t *testing.T) {
	amostras := amostrasDeTeste()

	out := records.Filter(amostras, records.Criteria{
		Inicio: data(18, 6),
		Fim:    data(2, 7),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "AM-2024-0016", out[0].Codigo)
	assert.Equal(t, "AM-2024-0017", out[1].Codigo)
}

func TestFilterIdempotente(t *testing.T) {
	amostras := amostrasDeTeste()
	crit := records.Criteria{Search: "am-2024", Status: records.StatusPendente}

	umaVez := records.Filter(amostras, crit)
	duasVezes := records.Filter(umaVez, crit)

	assert.Equal(t, umaVez, duasVezes)
}

func TestFilterNaoModificaEntrada(t *testing.T) {
	amostras := amostrasDeTeste()
	original := make([]*models.Amostra, len(amostras))
	copy(original, amostras)

	records.Filter(amostras, records.Criteria{Status: records.StatusPendente})

	assert.Equal(t, original, amostras)
}
