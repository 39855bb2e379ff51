// Package realtime pushes settlement outcomes to browsers over WebSocket.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/core/ports/events"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

// ErrHubStopped is returned by Publish and ServeWS after Run has returned.
var ErrHubStopped = errors.New("realtime hub stopped")

type outbound struct {
	userID  *int64
	payload []byte
}

// Hub tracks connected clients. All client bookkeeping happens on the Run
// goroutine.
type Hub struct {
	// register is unbuffered so a send only succeeds while Run is receiving.
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	done       chan struct{}

	clients  map[*Client]struct{}
	count    atomic.Int64
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

var _ events.TransactionPublisher = (*Hub)(nil)

// NewHub creates a hub. Connections are accepted from the listed origins, or
// from any origin when none are given.
func NewHub(logger *slog.Logger, allowedOrigins ...string) *Hub {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client, sendBuffer),
		broadcast:  make(chan outbound, sendBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowed) == 0 || origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
			h.logger.Info("WebSocket client registered", slog.Int64("connection_count", h.count.Load()))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Info("WebSocket client unregistered", slog.Int64("connection_count", h.count.Load()))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				if !c.wants(msg.userID) {
					continue
				}
				select {
				case c.send <- msg.payload:
				default:
					h.logger.Warn("WebSocket client send buffer full, disconnecting")
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	h.count.Add(-1)
	close(c.send)
}

// ClientCount reports the number of registered clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// PublishTransactionResolved implements events.TransactionPublisher. Clients
// subscribed to a user only receive that user's transactions.
func (h *Hub) PublishTransactionResolved(ctx context.Context, tx domain.Transaction) error {
	payload, err := json.Marshal(events.NewTransactionResolved(tx))
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}
	select {
	case h.broadcast <- outbound{userID: tx.UserID, payload: payload}:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeWS upgrades the request and registers the connection. A non-nil
// userID limits the client to that user's transactions.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID *int64) error {
	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	c := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), userID: userID}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return ErrHubStopped
	}

	go c.writePump()
	go c.readPump()
	return nil
}
