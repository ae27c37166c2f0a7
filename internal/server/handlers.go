package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/adjgraph/pkg/buildinfo"
	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/generate"
	"github.com/matzehuels/adjgraph/pkg/graph"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
	"github.com/matzehuels/adjgraph/pkg/render"
	"github.com/matzehuels/adjgraph/pkg/store"
)

type createRequest struct {
	Nodes int     `json:"nodes"`
	Seed  *uint64 `json:"seed,omitempty"`
}

type graphResponse struct {
	ID         string `json:"id"`
	Nodes      int    `json:"nodes"`
	MatrixSize int    `json:"matrix_size"`
	Hash       string `json:"hash"`
}

type listResponse struct {
	Graphs []string `json:"graphs"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	keys, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeIO, err, "list graphs"))
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, http.StatusOK, listResponse{Graphs: keys})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, bodyError(err, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")))
		return
	}
	if err := errors.ValidateNodeCount(req.Nodes, s.maxNodes); err != nil {
		s.writeError(w, err)
		return
	}

	seed := s.seed()
	if req.Seed != nil {
		seed = *req.Seed
	}
	g := generate.New(seed).Generate(req.Nodes)

	data, err := graphio.Marshal(g)
	if err != nil {
		s.writeError(w, err)
		return
	}
	key := store.NewKey()
	if err := s.store.Put(r.Context(), key, data); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeIO, err, "store graph %s", key))
		return
	}

	s.logger.Info("generated graph", "id", key, "nodes", req.Nodes, "seed", seed)
	w.Header().Set("Location", "/graphs/"+key)
	writeJSON(w, http.StatusCreated, newGraphResponse(key, g, data))
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	if err := errors.ValidateStoreKey(key); err != nil {
		s.writeError(w, err)
		return
	}

	g, err := graphio.Read(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.writeError(w, bodyError(err, err))
		return
	}
	data, err := graphio.Marshal(g)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), key, data); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeIO, err, "store graph %s", key))
		return
	}

	writeJSON(w, http.StatusOK, newGraphResponse(key, g, data))
}

func newGraphResponse(key string, g *graph.Graph, data []byte) graphResponse {
	return graphResponse{
		ID:         key,
		Nodes:      g.NodeCount(),
		MatrixSize: g.Matrix().Size(),
		Hash:       store.Hash(data),
	}
}

// bodyError reports an oversized request body as TOO_LARGE and otherwise
// returns fallback.
func bodyError(err, fallback error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.New(errors.ErrCodeTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
	}
	return fallback
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	data, err := s.fetch(r, key)
	if err != nil {
		s.writeError(w, err)
		return
	}

	etag := fmt.Sprintf("%q", store.Hash(data))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	g, err := graphio.Get(r.Context(), s.store, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var buf bytes.Buffer
	g.Print(&buf)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, &buf)
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	g, err := graphio.Get(r.Context(), s.store, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, render.ToDOT(g))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	if _, err := s.fetch(r, key); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), key); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeIO, err, "delete graph %s", key))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fetch returns the raw stored bytes for key.
func (s *Server) fetch(r *http.Request, key string) ([]byte, error) {
	if err := errors.ValidateStoreKey(key); err != nil {
		return nil, err
	}
	data, ok, err := s.store.Get(r.Context(), key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "fetch graph %s", key)
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "graph %s not found", key)
	}
	return data, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Error: errors.UserMessage(err)})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeDecode, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidKey:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
