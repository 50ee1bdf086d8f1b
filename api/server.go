package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matt-g-everett/staggertx/stream"
)

// Api serves the latest computed scene state over HTTP.
type Api struct {
	addr     string
	streamer *stream.Streamer
	logger   *log.Logger
}

// NewApi creates an instance of an Api object.
func NewApi(addr string, streamer *stream.Streamer, logger *log.Logger) *Api {
	a := new(Api)
	a.addr = addr
	a.streamer = streamer
	a.logger = logger
	return a
}

// Serve blocks, answering state requests.
func (a *Api) Serve() {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", a.handleState)

	a.logger.Info("listening", "addr", a.addr)
	if err := http.ListenAndServe(a.addr, mux); err != nil {
		a.logger.Error("http server stopped", "err", err)
	}
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.streamer.Snapshot()); err != nil {
		a.logger.Warn("state encode failed", "err", err)
	}
}
