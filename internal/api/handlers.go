package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/matzehuels/adjustable/pkg/buildinfo"
	"github.com/matzehuels/adjustable/pkg/errors"
	"github.com/matzehuels/adjustable/pkg/pipeline"
	"github.com/matzehuels/adjustable/pkg/scene"
)

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorBody struct {
	Code    errors.Code         `json:"code"`
	Message string              `json:"message"`
	Fields  []errors.FieldError `json:"fields,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	sc, err := scene.Decode(data, scene.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, hit, err := s.runner.Layout(r.Context(), sc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheStatus(hit))

	out, err := s.runner.Render(r.Context(), res, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if format == pipeline.FormatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// statusFor maps an error kind to an HTTP status.
func statusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindInvalid:
		return http.StatusBadRequest
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.KindOf(err))
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	body := errorBody{Code: code, Message: errors.UserMessage(err), Fields: errors.Fields(err)}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "code", code, "err", err)
		if code == errors.ErrCodeInternal {
			body.Message = "internal error"
		}
	}
	reportError(r, err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
