package hub

import (
	"context"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
)

// EditNotice is one applied edit, stamped with a monotonically
// increasing version by the hub before fan-out.
type EditNotice struct {
	Version int
	X       int
	Y       int
	TeamID  int
	Color   canvas.Color
}

type HubMsg interface{ isHubMsg() }

type Join struct {
	ClientID string
	Outbox   chan EditNotice // where this client wants to receive notices
}

type Leave struct{ ClientID string }

type Publish struct{ Notice EditNotice }

type GetState struct {
	Reply chan View
}

type ShutdownHub struct{}

func (Join) isHubMsg()        {}
func (Leave) isHubMsg()       {}
func (Publish) isHubMsg()     {}
func (GetState) isHubMsg()    {}
func (ShutdownHub) isHubMsg() {}

// View is test-only: reflect internal state without data races.
type View struct {
	Version    int
	NumClients int
}

type Hub struct {
	inbox   chan HubMsg
	clients map[string]chan EditNotice
	version int
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		clients: make(map[string]chan EditNotice),
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

// Expose the inbox so tests or the WS layer can send messages.
func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case Join:
				h.clients[msg.ClientID] = msg.Outbox

			case Leave:
				delete(h.clients, msg.ClientID)

			case Publish:
				h.version++
				n := msg.Notice
				n.Version = h.version
				h.broadcast(n)

			case GetState:
				msg.Reply <- View{Version: h.version, NumClients: len(h.clients)}

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) broadcast(n EditNotice) {
	for id, ch := range h.clients {
		select {
		case ch <- n:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(h.clients, id)
		}
	}
}

func (h *Hub) shutdown() {
	for id, ch := range h.clients {
		close(ch) // Tell client no more notices
		delete(h.clients, id)
	}
	h.cancel()
}
