package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dgallion1/chunklens/internal/analyze"
	"github.com/dgallion1/chunklens/internal/recommend"
	"github.com/dgallion1/chunklens/internal/report"
	"github.com/dgallion1/chunklens/internal/segment"
	"github.com/dgallion1/chunklens/internal/size"
	"github.com/google/uuid"
)

// handleAnalyze runs the full analysis on a markdown document posted as the
// request body. Responds with the JSON result, or a rendered markdown
// report when format=markdown.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	opts := s.optionsFrom(r)
	res, err := analyze.Run(r.Context(), text, opts)
	if err != nil {
		var mbe *segment.MalformedBoundaryError
		if errors.As(err, &mbe) {
			jsonError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	analysisID := uuid.NewString()
	s.log.Info("analysis complete",
		"analysis_id", analysisID,
		"chunks", res.TotalChunks,
		"tokens", res.TotalTokens,
		"recommendations", len(res.Recommendations),
	)

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, report.Markdown(res))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"analysis_id": analysisID,
		"result":      res,
	})
}

// handleChunks returns the measured chunk list without aggregation.
func (s *Server) handleChunks(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	chunks, err := analyze.Chunks(r.Context(), text, s.optionsFrom(r))
	if err != nil {
		var mbe *segment.MalformedBoundaryError
		if errors.As(err, &mbe) {
			jsonError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"chunks": chunks})
}

func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusRequestEntityTooLarge)
		return "", false
	}
	return string(data), true
}

// optionsFrom builds analysis options from config defaults plus per-request
// query overrides.
func (s *Server) optionsFrom(r *http.Request) analyze.Options {
	th := recommend.Thresholds{
		LowMeanTokens: s.cfg.LowMeanTokens,
		HighMaxTokens: s.cfg.HighMaxTokens,
		VarianceRatio: s.cfg.VarianceRatio,
		SplitShare:    s.cfg.SplitShare,
	}
	if v := r.URL.Query().Get("low_mean_tokens"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			th.LowMeanTokens = f
		}
	}
	if v := r.URL.Query().Get("high_max_tokens"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			th.HighMaxTokens = n
		}
	}
	if v := r.URL.Query().Get("variance_ratio"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			th.VarianceRatio = f
		}
	}

	tokenizer := s.cfg.Tokenizer
	if v := r.URL.Query().Get("tokenizer"); v != "" {
		tokenizer = v
	}

	var classifier segment.Classifier
	switch r.URL.Query().Get("classify") {
	case "markup":
		classifier = segment.MarkupClassifier()
	case "size":
		classifier = segment.SizeClassifier(th.HighMaxTokens, nil)
	}

	return analyze.Options{
		Tokenizer:  size.ForName(tokenizer),
		Classifier: classifier,
		Thresholds: th,
		Workers:    s.cfg.SizerWorkers,
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
