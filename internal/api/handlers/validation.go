// internal/api/handlers/validation.go
package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Os erros de validação devem reportar os nomes JSON dos campos, não os
// nomes dos structs Go.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// missingFields extrai de um erro de binding a lista de campos obrigatórios
// que não foram preenchidos.
func missingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var campos []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			campos = append(campos, fe.Field())
		}
	}
	return campos
}

// bindJSON faz o bind do corpo da requisição e, em caso de falha, responde
// 400 antes de qualquer escrita no banco. Campos obrigatórios ausentes são
// listados na resposta.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if campos := missingFields(err); len(campos) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Campos obrigatórios não preenchidos", "campos": campos})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return false
	}
	return true
}
