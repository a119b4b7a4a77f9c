package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/gridgen/pkg/buildinfo"
	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/pipeline"
)

// requestName labels a request in logs and hooks.
const requestName = "request"

// CheckResponse is the body of a successful /v1/check call.
type CheckResponse struct {
	Rows    int            `json:"rows"`
	Columns int            `json:"columns"`
	Shapes  int            `json:"shapes"`
	Counts  map[string]int `json:"counts"`
	Title   string         `json:"title,omitempty"`
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	text, opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	result, err := s.runner.Execute(r.Context(), requestName, text, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", result.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Artifact)))
	w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.RenderHit))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifact)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	text, opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	result, err := s.runner.Check(r.Context(), requestName, text, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	counts := make(map[string]int, len(result.Stats.Counts))
	for k, n := range result.Stats.Counts {
		counts[k.String()] = n
	}
	writeJSON(w, http.StatusOK, CheckResponse{
		Rows:    result.Stats.Rows,
		Columns: result.Stats.Columns,
		Shapes:  result.Stats.Shapes,
		Counts:  counts,
		Title:   result.Document.Title(),
		Width:   result.Layout.Bounds.Width,
		Height:  result.Layout.Bounds.Height,
	})
}

// decode reads the grid text and builds the run options. It writes the
// error response itself and reports false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (string, pipeline.Options, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeStatus(w, http.StatusRequestEntityTooLarge, string(gerrors.ErrCodeInvalidInput),
				"request body exceeds "+strconv.FormatInt(tooBig.Limit, 10)+" bytes")
			return "", pipeline.Options{}, false
		}
		s.writeError(w, r, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "failed to read request body"))
		return "", pipeline.Options{}, false
	}

	opts := s.base.Clone()
	opts.Logger = s.logger
	if err := applyQuery(r.URL.Query(), &opts); err != nil {
		s.writeError(w, r, err)
		return "", pipeline.Options{}, false
	}
	return string(body), opts, true
}

// writeError maps err onto a status and a JSON body. Errors without a code
// are treated as internal.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := gerrors.GetCode(err)
	status := http.StatusBadRequest
	if code == "" || gerrors.IsInternal(err) {
		status = http.StatusInternalServerError
		if code == "" {
			code = gerrors.ErrCodeInternal
		}
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}

	resp := ErrorResponse{
		Code:      string(code),
		Message:   gerrors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	if line, col, ok := gerrors.PositionOf(err); ok {
		resp.Line, resp.Column = line, col
	}
	if f, ok := gerrors.FieldOf(err); ok {
		resp.Field = f
	}
	writeJSON(w, status, resp)
}

func writeStatus(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
