package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// events streams order_status_updated events to the client as
// server-sent events. The subscription lives for exactly as long as
// the request: client disconnect tears it down.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	sub := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(sub)

	for {
		select {
		case <-r.Context().Done():
			return
		case <-sub.Done():
			return
		case event := <-sub.C():
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: order_status_updated\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
