package realtime

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

// Gateway bridges venue event subscriptions onto WebSocket connections.
type Gateway struct {
	Hub    Hub
	Logger *zap.Logger
}

func NewGateway(hub Hub, logger *zap.Logger) *Gateway {
	return &Gateway{Hub: hub, Logger: logger}
}

// HandleWebSocket upgrades the request and streams the venue's events until
// the client disconnects. The venue is named by the "venue" query parameter.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	venueID := r.URL.Query().Get("venue")
	if venueID == "" {
		http.Error(w, "missing venue parameter", http.StatusBadRequest)
		return
	}
	websocket.Handler(func(ws *websocket.Conn) {
		g.serve(ws, venueID)
	}).ServeHTTP(w, r)
}

func (g *Gateway) serve(ws *websocket.Conn, venueID string) {
	defer ws.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, leave, err := g.Hub.Subscribe(ctx, venueID)
	if err != nil {
		g.Logger.Error("websocket subscribe failed",
			zap.String("venueID", venueID), zap.Error(err))
		return
	}
	defer leave()

	// the client never sends application messages; the read loop exists to
	// detect disconnects
	go func() {
		defer cancel()
		for {
			var discard string
			if err := websocket.Message.Receive(ws, &discard); err != nil {
				return
			}
		}
	}()

	g.Logger.Info("websocket subscriber joined", zap.String("venueID", venueID))
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := websocket.JSON.Send(ws, ev); err != nil {
				g.Logger.Debug("websocket send failed, dropping subscriber",
					zap.String("venueID", venueID), zap.Error(err))
				return
			}
		}
	}
}
