package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-console/internal/store"
)

type ConsoleHandler interface {
	State(w http.ResponseWriter, r *http.Request)
	Reload(w http.ResponseWriter, r *http.Request)
	DismissError(w http.ResponseWriter, r *http.Request)
	DismissMessage(w http.ResponseWriter, r *http.Request)
	// Stream handles the SSE connection that tells consoles to re-render
	Stream(w http.ResponseWriter, r *http.Request)
}

// Subscriber hands out event subscriptions per topic.
type Subscriber interface {
	Subscribe(topic string) (<-chan sse.Event, func())
}

type consoleHandlerImpl struct {
	store     *store.Store
	events    Subscriber
	keepalive time.Duration
}

func NewConsoleHandler(st *store.Store, events Subscriber) ConsoleHandler {
	return &consoleHandlerImpl{
		store:     st,
		events:    events,
		keepalive: 30 * time.Second,
	}
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}

// State returns the load state of both resources and the banners
func (h *consoleHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Snapshot().View())
}

// Reload forces a joint re-fetch of both collections
func (h *consoleHandlerImpl) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Load(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Data reloaded", h.store.Snapshot().View())
}

func (h *consoleHandlerImpl) DismissError(w http.ResponseWriter, r *http.Request) {
	h.store.DismissError()
	response.Success(w, h.store.Snapshot().View())
}

func (h *consoleHandlerImpl) DismissMessage(w http.ResponseWriter, r *http.Request) {
	h.store.DismissMessage()
	response.Success(w, h.store.Snapshot().View())
}

func (h *consoleHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.events.Subscribe(store.Topic)
	defer cleanup()

	// Send initial connection event with the current version
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"version\":%d}\n\n", h.store.Snapshot().Version)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
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
