package ws

import (
	"log"
	"net/http"
	"sync"

	"toeat/entity"
	"toeat/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHub fans freshly created notifications out to connected
// clients. It implements services.Publisher. Delivery is best-effort:
// a dead socket is dropped, the inbox row is already persisted.
type NotificationHub struct {
	clients    map[*websocket.Conn]client
	publish    chan *entity.Notification
	register   chan subscription
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type client struct {
	userID uint
	role   string
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
	role   string
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[*websocket.Conn]client),
		publish:    make(chan *entity.Notification, 64),
		register:   make(chan subscription),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish queues a notification for fanout. Non-blocking: if the hub is
// backed up the event is dropped, clients re-sync from the inbox.
func (h *NotificationHub) Publish(n *entity.Notification) {
	select {
	case h.publish <- n:
	default:
		log.Printf("ws feed full, dropped %q", n.Type)
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.conn] = client{userID: sub.userID, role: sub.role}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.publish:
			h.mu.Lock()
			for conn, cl := range h.clients {
				if !n.VisibleTo(cl.userID, cl.role) {
					continue
				}
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- subscription{conn: conn, userID: userID, role: role}
	go h.drain(conn)
}

// drain keeps the read side alive so close frames are processed; the
// feed is one-way.
func (h *NotificationHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
