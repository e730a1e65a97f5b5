// Package adminhttp exposes an operational HTTP surface over a running
// lrmap instance: a stats endpoint and a manual refresh trigger. It is
// grounded on the teacher's internal/api.Server (gorilla/mux routing,
// an embedded *http.Server, the same Server/NewServer/RegisterRoutes/
// ListenAndServe/Shutdown shape) and protects the refresh endpoint with
// sentinel-golang flow control the way the teacher's internal/core/strategy
// wraps a Strategy with a circuit breaker — a pattern the teacher's own
// go.mod pulls in sentinel-golang for but never wires up.
package adminhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nanjiek/leftright-kv/internal/metrics"
	"github.com/nanjiek/leftright-kv/lrmap"
)

const refreshResource = "lrmap.refresh"

// Server serves read-only stats and a manual refresh trigger for one
// lrmap instance.
type Server struct {
	cfg         Config
	srv         *http.Server
	size        func() int
	isEmpty     func() bool
	readerCount func() int
	doRefresh   func()
	rec         *metrics.Recorder
}

// Config mirrors the teacher's config.ServerCfg: a plain struct of
// listener settings, not a functional-options builder.
type Config struct {
	HTTPAddr        string
	RefreshQPSLimit uint32 // max /debug/lrmap/refresh calls per second; 0 disables the limiter
}

// New constructs a Server bound to writer's Size, IsEmpty, and Refresh,
// and to rf's ReaderCount. The type parameters are inferred from writer
// and rf and never otherwise observable through Server's exported
// surface, which is intentionally untyped (JSON over HTTP has no use for
// Go generics).
func New[K comparable, V any](cfg Config, rf *lrmap.ReaderFactory[K, V], writer *lrmap.Writer[K, V], rec *metrics.Recorder) *Server {
	s := &Server{
		cfg:         cfg,
		size:        writer.Size,
		isEmpty:     writer.IsEmpty,
		readerCount: rf.ReaderCount,
		doRefresh:   writer.Refresh,
		rec:         rec,
	}
	if cfg.RefreshQPSLimit > 0 {
		initFlowControl(cfg.RefreshQPSLimit)
	}
	return s
}

func initFlowControl(qps uint32) {
	_ = api.InitDefault()
	_, _ = flow.LoadRules([]*flow.Rule{
		{
			Resource:               refreshResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              float64(qps),
			StatIntervalInMs:       1000,
		},
	})
}

// RegisterRoutes wires this server's handlers onto r, matching the
// teacher's Server.RegisterRoutes signature.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/debug/lrmap/stats", s.statsHandler).Methods(http.MethodGet)
	r.HandleFunc("/debug/lrmap/refresh", s.refreshHandler).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// ListenAndServe builds a router, registers routes, and serves until the
// listener errors or Shutdown is called.
func (s *Server) ListenAndServe() error {
	r := mux.NewRouter()
	s.RegisterRoutes(r)
	s.srv = &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

type statsResponse struct {
	Size        int  `json:"size"`
	IsEmpty     bool `json:"isEmpty"`
	ReaderCount int  `json:"readerCount"`
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.rec != nil {
		s.rec.Read()
	}
	_ = json.NewEncoder(w).Encode(statsResponse{
		Size:        s.size(),
		IsEmpty:     s.isEmpty(),
		ReaderCount: s.readerCount(),
	})
}

func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if s.cfg.RefreshQPSLimit > 0 {
		entry, blockErr := api.Entry(refreshResource, api.WithTrafficType(base.Inbound))
		if blockErr != nil {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": fmt.Sprintf("refresh rate limit exceeded: %s", blockErr.Error()),
			})
			return
		}
		defer entry.Exit()
	}

	if s.rec != nil {
		s.rec.Refreshed(s.doRefresh)
	} else {
		s.doRefresh()
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "refreshed"})
}
