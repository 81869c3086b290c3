// Package ws difunde los cambios de stock a los clientes WebSocket conectados.
package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
)

// Conn es la parte de *websocket.Conn que usa el hub.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Message sobre enviado a los clientes.
type Message struct {
	Type string               `json:"type"`
	Data inventory.StockEvent `json:"data"`
}

// MessageStockChanged tipo de mensaje tras cada movimiento confirmado.
const MessageStockChanged = "stock_changed"

const broadcastBuffer = 64

// Hub mantiene los clientes conectados y les reenvía cada evento de stock.
// Implementa inventory.StockNotifier.
type Hub struct {
	clients    map[Conn]bool
	register   chan Conn
	unregister chan Conn
	broadcast  chan []byte
	done       chan struct{}
	log        zerolog.Logger
	mutex      sync.Mutex
}

// NewHub construye el hub. Run debe ejecutarse en una goroutine.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[Conn]bool),
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run atiende altas, bajas y difusiones hasta que ctx se cancela; al salir cierra
// todas las conexiones.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for conn := range h.clients {
				_ = conn.Close()
				delete(h.clients, conn)
			}
			h.mutex.Unlock()
			return

		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug().Int("clients", total).Msg("cliente WS conectado")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				_ = conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.log.Debug().Err(err).Msg("cliente WS descartado")
					_ = conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Register agrega un cliente. No bloquea si el hub ya terminó.
func (h *Hub) Register(conn Conn) {
	select {
	case h.register <- conn:
	case <-h.done:
	}
}

// Unregister quita y cierra un cliente.
func (h *Hub) Unregister(conn Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// ClientCount número de clientes conectados.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// StockChanged encola el evento para todos los clientes. Si la cola está llena el
// evento se descarta: el movimiento ya está confirmado y no debe esperar al feed.
func (h *Hub) StockChanged(_ context.Context, evt inventory.StockEvent) {
	payload, err := json.Marshal(Message{Type: MessageStockChanged, Data: evt})
	if err != nil {
		h.log.Error().Err(err).Msg("serializar evento de stock")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Str("product_id", evt.ProductID).Msg("cola WS llena, evento descartado")
	}
}

// UpgradeRequired rechaza con 426 las peticiones a /ws que no piden upgrade.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler atiende una conexión: la registra y la mantiene hasta que el cliente cierra.
// Los mensajes entrantes se ignoran.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		h.Register(c)
		defer h.Unregister(c)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	})
}
