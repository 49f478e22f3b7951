// internal/api/handlers/websocket_handler.go
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mel-lab-api-server/internal/auth"
	"mel-lab-api-server/internal/socket"
)

const (
	// Tempo máximo de espera por um sinal de vida do cliente.
	pongWait = 30 * time.Second
	// Prazo para a escrita do PONG de resposta.
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub    *socket.Hub
	Secret []byte
}

// ServeWs autentica pelo token na query string (o app não consegue mandar
// header em conexões WebSocket) e registra a conexão no Hub. O mesmo
// usuário pode manter várias conexões, uma por dispositivo.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token é obrigatório"})
		return
	}

	claims, err := auth.ParseJWT(tokenString, h.Secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Falha ao promover a conexão: %v", err)
		return
	}

	connID := fmt.Sprintf("%s-%s", claims.Email, uuid.New().String()[:8])
	h.Hub.Register(connID, conn)

	defer func() {
		h.Hub.Unregister(connID)
		conn.Close()
	}()

	// Heartbeat: cada PING do cliente renova o prazo de leitura e recebe o
	// PONG de volta. Instalar um PingHandler substitui o handler padrão do
	// gorilla/websocket, então o PONG tem que ser enviado aqui.
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(writeWait))
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Conexão encerrada de forma inesperada: %v", err)
			}
			break
		}
	}
}
