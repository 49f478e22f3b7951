// internal/records/status.go
package records

import (
	"errors"
	"fmt"
)

// Status é a situação de um registro dentro do fluxo do laboratório.
type Status string

const (
	StatusPendente  Status = "PENDENTE"
	StatusConcluida Status = "CONCLUÍDA"
	StatusEmitido   Status = "EMITIDO"
)

// ErrInvalidTransition indica uma tentativa de mover um registro para um
// status que não existe no ciclo de vida do seu tipo.
var ErrInvalidTransition = errors.New("transição de status inválida")

// Kind define, para cada tipo de registro, o prefixo do código de exibição
// e o status terminal do seu ciclo de vida.
type Kind struct {
	Prefix   string
	Terminal Status
}

var (
	Amostra = Kind{Prefix: "AM", Terminal: StatusConcluida}
	Analise = Kind{Prefix: "AN", Terminal: StatusConcluida}
	Laudo   = Kind{Prefix: "LD", Terminal: StatusEmitido}
)

// Transition valida a mudança de status de um registro. Todo registro nasce
// PENDENTE e só pode alternar entre PENDENTE e o status terminal do seu tipo.
// Quando o novo status é igual ao atual a operação é um no-op.
func (k Kind) Transition(atual, novo Status) (Status, error) {
	if novo != StatusPendente && novo != k.Terminal {
		return atual, fmt.Errorf("%w: %q", ErrInvalidTransition, novo)
	}
	return novo, nil
}
