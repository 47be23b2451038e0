package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgallion1/policyqa/internal/parser"
	"github.com/dgallion1/policyqa/internal/segment"
)

// RunRequest is the body of POST /api/run.
type RunRequest struct {
	Documents string   `json:"documents"`
	Questions []string `json:"questions"`
}

// RunResponse is the success body: one answer per question, in order.
type RunResponse struct {
	Answers []string `json:"answers"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Documents) == "" {
		jsonError(w, "documents is required", http.StatusBadRequest)
		return
	}
	if len(req.Questions) == 0 {
		jsonError(w, "questions is required", http.StatusBadRequest)
		return
	}
	if len(req.Questions) > s.cfg.MaxQuestions {
		jsonError(w, "too many questions", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	data, filename, err := s.fetcher.Fetch(ctx, req.Documents)
	if err != nil {
		s.log.Error("document fetch failed", "url", req.Documents, "error", err)
		jsonError(w, "failed to fetch document: "+err.Error(), http.StatusBadGateway)
		return
	}

	if !parser.IsSupportedExtension(filename) {
		jsonError(w, "unsupported document type: "+filename, http.StatusBadRequest)
		return
	}
	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Error("document parse failed", "filename", filename, "error", err)
		jsonError(w, "failed to parse document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	clauses := segment.Clauses(doc, segment.Config{
		MaxPages: s.cfg.MaxPages,
		MinWords: s.cfg.MinClauseWords,
	})

	session, err := s.pipeline.NewSession(ctx, clauses)
	if err != nil {
		// Embedding trouble degrades to fallback answers (overrides still
		// fire); it never fails the whole batch.
		s.log.Error("session setup failed", "filename", filename, "error", err)
		session, _ = s.pipeline.NewSession(ctx, nil)
	}

	answers := session.Run(ctx, req.Questions)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RunResponse{Answers: answers})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
