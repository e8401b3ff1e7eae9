// Package realtime cung cấp kênh push websocket cho client.
// Hub broadcast sự kiện thay đổi dữ liệu (job, invoice, customer) tới mọi client
// đang kết nối. Fire-and-forget: không ack, client chậm sẽ bị ngắt.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"momentum_pos/internal/logger"
)

// Event là một sự kiện thay đổi dữ liệu được push tới client
type Event struct {
	Event string      `json:"event"` // Tên sự kiện (jobUpdated, invoiceUpdated, customerUpdated)
	Type  string      `json:"type"`  // Loại thay đổi (created, updated, deleted)
	Data  interface{} `json:"data"`  // Payload
}

// Hub quản lý các kết nối websocket và broadcast sự kiện
type Hub struct {
	connections map[string]*client
	mu          sync.RWMutex
	upgrader    websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

// NewHub tạo một Hub mới
func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth của realtime channel là best-effort, origin check để ở CORS tầng HTTP
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrade kết nối HTTP thành websocket và đăng ký client vào hub
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Warn("Không thể upgrade kết nối websocket")
		return
	}

	id := uuid.NewString()
	cl := &client{
		conn: conn,
		send: make(chan Event, 64),
	}

	h.mu.Lock()
	h.connections[id] = cl
	h.mu.Unlock()

	logger.WithModule("realtime").WithField("clientId", id).Info("Client websocket kết nối")

	go h.writeLoop(id, cl)
	go h.readLoop(id, cl)
}

// writeLoop đẩy sự kiện từ channel xuống kết nối websocket
func (h *Hub) writeLoop(id string, cl *client) {
	for event := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := cl.conn.WriteJSON(event); err != nil {
			h.unregister(id)
			return
		}
	}
}

// readLoop chỉ đọc để phát hiện client đóng kết nối
func (h *Hub) readLoop(id string, cl *client) {
	defer h.unregister(id)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cl, exists := h.connections[id]; exists {
		_ = cl.conn.Close()
		close(cl.send)
		delete(h.connections, id)
	}
}

// Broadcast gửi một sự kiện tới tất cả client đang kết nối.
// Client có buffer đầy sẽ bị ngắt thay vì block goroutine gọi.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	slow := make([]string, 0)
	for id, cl := range h.connections {
		select {
		case cl.send <- event:
		default:
			slow = append(slow, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range slow {
		logger.WithModule("realtime").WithField("clientId", id).Warn("Client chậm, ngắt kết nối")
		h.unregister(id)
	}
}

// OnlineCount trả về số client đang kết nối
func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Close đóng tất cả kết nối
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, cl := range h.connections {
		_ = cl.conn.Close()
		close(cl.send)
		delete(h.connections, id)
	}
}
