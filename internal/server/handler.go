// Package server exposes the controller over a JSON HTTP API.
//
// All routes live under /api/v1. A single mutex serialises every request's
// access to the controller, so the controller keeps exactly one writer at a
// time. Addresses are validated before they reach the controller: the core
// tolerates out-of-range channels silently, the API reports them as 400.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/conmx/conmx/pkg/buildinfo"
	"github.com/conmx/conmx/pkg/controller"
	cerrors "github.com/conmx/conmx/pkg/errors"
	"github.com/conmx/conmx/pkg/node"
	"github.com/conmx/conmx/pkg/observability"
	"github.com/conmx/conmx/pkg/render/canvas"
)

// Handler serves the API for one controller.
type Handler struct {
	mu     sync.Mutex
	ctl    *controller.Controller
	logger *log.Logger
}

// NewHandler wraps ctl. A nil logger falls back to log.Default().
func NewHandler(ctl *controller.Controller, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{ctl: ctl, logger: logger}
}

// Apply runs fn while holding the request lock.
func (h *Handler) Apply(fn func(*controller.Controller)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.ctl)
}

// Routes returns an http.Handler with all API routes registered.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", h.Version)
		r.Get("/show", h.Show)

		r.Get("/universes", h.ListUniverses)
		r.Route("/universes/{universe}", func(r chi.Router) {
			r.Get("/", h.GetUniverse)
			r.Get("/channels/{channel}", h.GetChannel)
			r.Put("/channels/{channel}", h.SetChannel)
			r.Put("/channels/{channel}/override", h.OverrideChannel)
			r.Delete("/channels/{channel}/override", h.RevertChannel)
		})

		r.Get("/graph", h.Graph)
		r.Get("/graph.svg", h.GraphSVG)
	})
	return r
}

// === Request/Response Types ===

// ValueRequest is the body of channel writes.
type ValueRequest struct {
	Value *uint32 `json:"value"`
}

// UniverseResponse is the body for a single universe.
type UniverseResponse struct {
	ID       int      `json:"id"`
	Channels []uint32 `json:"channels"`
}

// GraphResponse describes the patch.
type GraphResponse struct {
	Nodes []NodeResponse `json:"nodes"`
	Edges []EdgeResponse `json:"edges"`
}

// NodeResponse describes one occupied node slot.
type NodeResponse struct {
	Index    int            `json:"index"`
	Title    string         `json:"title,omitempty"`
	Position PointResponse  `json:"position"`
	Inputs   []PortResponse `json:"inputs"`
	Outputs  []PortResponse `json:"outputs"`
}

// PointResponse is a grid position.
type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PortResponse describes one port.
type PortResponse struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// EdgeResponse is one connection.
type EdgeResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ErrorResponse is the response body for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// === Handlers ===

// Version reports build information.
// GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, buildinfo.Get())
}

// Show summarises the controller.
// GET /api/v1/show
func (h *Handler) Show(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeJSON(w, http.StatusOK, h.ctl.Summary())
}

// ListUniverses lists configured universe ids.
// GET /api/v1/universes
func (h *Handler) ListUniverses(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeJSON(w, http.StatusOK, h.ctl.Registry().IDs())
}

// GetUniverse returns every effective channel value of a universe.
// GET /api/v1/universes/{universe}
func (h *Handler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	id, err := cerrors.ParseUniverseID(chi.URLParam(r, "universe"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	u, err := h.ctl.Universe(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, UniverseResponse{ID: u.ID(), Channels: u.Values()})
}

// GetChannel returns one channel.
// GET /api/v1/universes/{universe}/channels/{channel}
func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, ch, err := address(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	st, _, err := h.ctl.Channel(id, ch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

// SetChannel writes a channel's base value.
// PUT /api/v1/universes/{universe}/channels/{channel}
func (h *Handler) SetChannel(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, func(id, ch int, v uint32) error { return h.ctl.SetChannel(id, ch, v) })
}

// OverrideChannel activates an override.
// PUT /api/v1/universes/{universe}/channels/{channel}/override
func (h *Handler) OverrideChannel(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, func(id, ch int, v uint32) error { return h.ctl.OverrideChannel(id, ch, v) })
}

// RevertChannel drops an override.
// DELETE /api/v1/universes/{universe}/channels/{channel}/override
func (h *Handler) RevertChannel(w http.ResponseWriter, r *http.Request) {
	id, ch, err := address(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.ctl.RevertChannel(id, ch); err != nil {
		h.writeError(w, err)
		return
	}
	st, _, _ := h.ctl.Channel(id, ch)
	h.writeJSON(w, http.StatusOK, st)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, apply func(id, ch int, v uint32) error) {
	id, ch, err := address(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req ValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "invalid JSON body"))
		return
	}
	if req.Value == nil {
		h.writeError(w, cerrors.New(cerrors.ErrCodeInvalidInput, "value is required"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := apply(id, ch, *req.Value); err != nil {
		h.writeError(w, err)
		return
	}
	st, _, _ := h.ctl.Channel(id, ch)
	h.writeJSON(w, http.StatusOK, st)
}

// Graph describes the patch.
// GET /api/v1/graph
func (h *Handler) Graph(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	resp := GraphResponse{Nodes: []NodeResponse{}, Edges: []EdgeResponse{}}
	for i, s := range h.ctl.Patch().Nodes() {
		if !s.Occupied {
			continue
		}
		n := s.Value
		resp.Nodes = append(resp.Nodes, NodeResponse{
			Index:    i,
			Title:    n.Title(),
			Position: PointResponse{X: n.Position().X, Y: n.Position().Y},
			Inputs:   inputPorts(n.Inputs()),
			Outputs:  outputPorts(n.Outputs()),
		})
	}
	for _, e := range h.ctl.Patch().Edges() {
		resp.Edges = append(resp.Edges, EdgeResponse{Start: int(e.Start), End: int(e.End)})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GraphSVG draws the patch.
// GET /api/v1/graph.svg
func (h *Handler) GraphSVG(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	svg := canvas.SVG(h.ctl.Patch(), canvas.Options{})
	h.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// === Helpers ===

func address(r *http.Request) (int, int, error) {
	id, err := cerrors.ParseUniverseID(chi.URLParam(r, "universe"))
	if err != nil {
		return 0, 0, err
	}
	ch, err := cerrors.ParseChannelIndex(chi.URLParam(r, "channel"))
	if err != nil {
		return 0, 0, err
	}
	return id, ch, nil
}

func inputPorts(ports []node.InputPort) []PortResponse {
	out := make([]PortResponse, len(ports))
	for i, p := range ports {
		out[i] = portResponse(p.Name, p.Port)
	}
	return out
}

func outputPorts(ports []node.OutputPort) []PortResponse {
	out := make([]PortResponse, len(ports))
	for i, p := range ports {
		out[i] = portResponse(p.Name, p.Port)
	}
	return out
}

func portResponse(name string, p node.Port) PortResponse {
	if p == nil {
		return PortResponse{Name: name}
	}
	return PortResponse{Name: name, Kind: p.Kind().String(), Value: p.String()}
}

func statusFor(err error) int {
	switch {
	case cerrors.IsNotFound(err):
		return http.StatusNotFound
	case cerrors.Is(err, cerrors.ErrCodeInvalidInput), cerrors.Is(err, cerrors.ErrCodeInvalidAddress):
		return http.StatusBadRequest
	case cerrors.Is(err, cerrors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := cerrors.GetCode(err)
	if code == "" {
		code = cerrors.ErrCodeInternal
	}
	h.writeJSON(w, statusFor(err), ErrorResponse{Error: cerrors.UserMessage(err), Code: string(code)})
}

func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "took", elapsed)
	})
}
