package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/tiegraph/pkg/buildinfo"
	"github.com/matzehuels/tiegraph/pkg/degree"
	errs "github.com/matzehuels/tiegraph/pkg/errors"
	"github.com/matzehuels/tiegraph/pkg/graph"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
	Nodes  int            `json:"nodes"`
	Edges  int            `json:"edges"`
}

type nodeJSON struct {
	ID    graph.NodeID `json:"id"`
	Label string       `json:"label"`
}

type edgeJSON struct {
	From   graph.NodeID `json:"from"`
	To     graph.NodeID `json:"to"`
	Weight int          `json:"weight"`
}

type graphResponse struct {
	NodeCount int        `json:"node_count"`
	EdgeCount int        `json:"edge_count"`
	Nodes     []nodeJSON `json:"nodes"`
	Edges     []edgeJSON `json:"edges"`
}

type degreesResponse struct {
	Total     int            `json:"total"`
	Mean      float64        `json:"mean"`
	Max       *degree.Entry  `json:"max,omitempty"`
	Degrees   []degree.Entry `json:"degrees"`
	Histogram map[int]int    `json:"histogram,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Build:  buildinfo.Get(),
		Nodes:  s.result.Graph.NodeCount(),
		Edges:  s.result.Graph.EdgeCount(),
	})
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	g := s.result.Graph
	resp := graphResponse{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Nodes:     make([]nodeJSON, 0, g.NodeCount()),
		Edges:     make([]edgeJSON, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		resp.Nodes = append(resp.Nodes, nodeJSON{ID: n.ID, Label: n.Label})
	}
	for _, e := range g.Edges() {
		resp.Edges = append(resp.Edges, edgeJSON{From: e.From, To: e.To, Weight: e.Weight})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDegrees(w http.ResponseWriter, r *http.Request) {
	d := s.result.Degrees
	resp := degreesResponse{
		Total:   d.Total(),
		Mean:    d.Mean(),
		Degrees: d.Ranked(),
	}
	if top, ok := d.Max(); ok {
		resp.Max = &top
	}
	if want, _ := strconv.ParseBool(r.URL.Query().Get("histogram")); want {
		resp.Histogram = d.Histogram()
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, string(errs.ErrCodeInvalidInput), "query parameters from and to are required")
		return
	}

	res, err := s.runner.ShortestPath(r.Context(), s.result, from, to)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// writeErr maps a coded error to its HTTP status.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case errs.IsNotFound(err):
		status = http.StatusNotFound
	case code == errs.ErrCodeInvalidInput || code == errs.ErrCodeInvalidLabel:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		code = errs.ErrCodeInternal
	}
	writeError(w, status, string(code), errs.UserMessage(err))
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	respondJSON(w, status, errorResponse{Error: msg, Code: code})
}
