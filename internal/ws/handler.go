package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"ecovolt/internal/chart"
	"ecovolt/internal/log"
	"ecovolt/internal/metrics"
	"ecovolt/internal/simulator"
)

const sendBufferSize = 256

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler mounts one live demo view per WebSocket connection. Each view gets
// its own tick driver and chart selection, both discarded when it disconnects.
type Handler struct {
	hub        *Hub
	engineOpts []simulator.Option
}

func NewHandler(hub *Hub, engineOpts ...simulator.Option) *Handler {
	return &Handler{hub: hub, engineOpts: engineOpts}
}

// view is the per-connection state.
type view struct {
	client   *Client
	selector *chart.Selector
	engine   *simulator.Engine
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Ctx(r.Context()).WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	ctx := log.WithAttrs(r.Context(), "view_id", client.id)

	v := &view{
		client:   client,
		selector: chart.NewSelector(),
	}
	v.engine = simulator.New(NewBridge(ctx, client), h.engineOpts...)

	if !h.hub.Register(client) {
		log.Ctx(ctx).DebugContext(ctx, "view refused, server shutting down")
		closeGoingAway(conn)
		return
	}
	go client.writePump()

	// Initial render: current selection, then the offset-0 series.
	h.sendView(ctx, v)
	h.sendSeries(ctx, v)

	v.engine.Start()
	log.Ctx(ctx).DebugContext(ctx, "view mounted")

	h.readPump(ctx, v)
}

func (h *Handler) readPump(ctx context.Context, v *view) {
	defer func() {
		// The engine must be stopped before the send channel is closed.
		v.engine.Stop()
		h.hub.Unregister(v.client)
		v.client.conn.Close()
		log.Ctx(ctx).DebugContext(ctx, "view unmounted", "offset", v.engine.State().Offset)
	}()

	for {
		_, msg, err := v.client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Ctx(ctx).WarnContext(ctx, "websocket read failed", "error", err)
			}
			return
		}

		h.handleMessage(ctx, v, msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, v *view, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "invalid message", "error", err)
		return
	}

	switch env.Type {
	case TypeChartSelect:
		var p SelectPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Ctx(ctx).WarnContext(ctx, "invalid chart:select payload", "error", err)
			return
		}
		sel, err := chart.ParseSelection(p.Selection)
		if err != nil {
			h.sendError(ctx, v, err.Error())
			return
		}
		v.selector.Set(sel)
		metrics.Selections.WithLabelValues(string(sel)).Inc()
		h.sendView(ctx, v)

	default:
		log.Ctx(ctx).WarnContext(ctx, "unknown message type", "type", env.Type)
	}
}

func (h *Handler) sendView(ctx context.Context, v *view) {
	h.send(ctx, v, TypeChartView, v.selector.View())
}

func (h *Handler) sendSeries(ctx context.Context, v *view) {
	h.send(ctx, v, TypeSeriesUpdate, SeriesFromUpdate(v.engine.Snapshot()))
}

func (h *Handler) sendError(ctx context.Context, v *view, message string) {
	h.send(ctx, v, TypeError, ErrorPayload{Message: message})
}

func (h *Handler) send(ctx context.Context, v *view, msgType string, payload any) {
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to marshal message", "type", msgType, "error", err)
		return
	}
	if !v.client.trySend(msg) {
		log.Ctx(ctx).WarnContext(ctx, "view buffer full, dropping message", "type", msgType)
	}
}
