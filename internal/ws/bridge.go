package ws

import (
	"context"

	"ecovolt/internal/log"
	"ecovolt/internal/metrics"
	"ecovolt/internal/simulator"
)

// Bridge implements simulator.Callback and forwards ticks to one view.
type Bridge struct {
	ctx    context.Context
	client *Client
}

func NewBridge(ctx context.Context, c *Client) *Bridge {
	return &Bridge{ctx: ctx, client: c}
}

func (b *Bridge) OnSeries(u simulator.Update) {
	msg, err := NewEnvelope(TypeSeriesUpdate, SeriesFromUpdate(u))
	if err != nil {
		log.Ctx(b.ctx).ErrorContext(b.ctx, "failed to marshal series update", "error", err)
		return
	}
	if !b.client.trySend(msg) {
		// A slow view skips frames; the next tick carries a full series anyway.
		metrics.DroppedUpdates.Inc()
		log.Ctx(b.ctx).DebugContext(b.ctx, "view buffer full, dropping series update", "offset", u.Offset)
	}
}
