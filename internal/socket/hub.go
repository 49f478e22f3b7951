// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Tipos de evento enviados aos clientes conectados.
const (
	EventoCriado     = "criado"
	EventoAtualizado = "atualizado"
	EventoRemovido   = "removido"
)

// Evento é a notificação publicada quando um registro é criado, tem o
// status alterado ou é removido. As telas usam isso para recarregar a
// lista sem polling.
type Evento struct {
	Tipo     string      `json:"tipo"`
	Colecao  string      `json:"colecao"` // "amostras", "analises" ou "laudos"
	Registro interface{} `json:"registro,omitempty"`
	ID       string      `json:"id,omitempty"`
}

// Hub gerencia todas as conexões WebSocket ativas.
type Hub struct {
	// clients guarda as conexões, a chave é o id da conexão.
	clients map[string]*websocket.Conn
	// mu protege o map clients contra acesso de várias goroutines.
	mu sync.RWMutex
}

// NewHub cria um Hub vazio.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register adiciona uma conexão nova ao Hub.
func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[connID] = conn
	log.Printf("Cliente WebSocket conectado: %s", connID)
}

// Unregister remove uma conexão do Hub.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[connID]; ok {
		delete(h.clients, connID)
		log.Printf("Cliente WebSocket desconectado: %s", connID)
	}
}

// Broadcast envia o evento para todas as conexões ativas. O lock exclusivo
// serializa broadcasts disparados por requisições concorrentes: o
// gorilla/websocket admite um único escritor por conexão. Falha de escrita
// em uma conexão não interrompe o envio para as demais.
func (h *Hub) Broadcast(ev Evento) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Falha ao serializar evento: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for connID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Falha ao enviar evento para %s: %v", connID, err)
		}
	}
}
