package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/snapshot"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/sse"
)

type SyncHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type SyncHandlerImpl struct {
	saver *snapshot.Saver
	hub   *sse.Hub
}

func NewSyncHandler(saver *snapshot.Saver, hub *sse.Hub) SyncHandler {
	return &SyncHandlerImpl{saver: saver, hub: hub}
}

// Status implements SyncHandler.
func (h *SyncHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.saver.Status())
}

// Stream pushes sync status updates over SSE so the console banner can
// react without polling.
func (h *SyncHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	// Current status first so a reconnecting client never renders stale data.
	if data, err := json.Marshal(h.saver.Status()); err == nil {
		fmt.Fprintf(w, "event: sync\ndata: %s\n\n", data)
		flusher.Flush()
	}

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
