// internal/records/codegen.go
package records

import (
	"fmt"
	"math/rand"
	"time"
)

// NewCode gera o código de exibição de um novo registro, no formato
// <PREFIXO>-<ano>-<4 dígitos>, ex: "AM-2024-0015". O código é apenas um
// identificador legível para as telas; a unicidade fica por conta do _id
// gerado pelo banco.
func (k Kind) NewCode(now time.Time) string {
	return fmt.Sprintf("%s-%d-%04d", k.Prefix, now.Year(), rand.Intn(10000))
}
