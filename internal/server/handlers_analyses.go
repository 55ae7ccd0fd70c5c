package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/analyzer"
	"github.com/jonathan/placement-prep/internal/export"
	"github.com/jonathan/placement-prep/internal/types"
)

// handleCreateAnalysis analyzes a job description and stores the result.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description text is required")
		return
	}

	record, err := s.history.Submit(r.Context(), req.Company, req.Role, req.JDText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := map[string]any{"analysis": record}
	if analyzer.ShortJD(req.JDText) {
		response["warning"] = "Job description is very short. Paste the full JD for a more accurate analysis."
	}

	s.jsonResponse(w, http.StatusCreated, response)
}

// handleListAnalyses returns the stored history, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	result, err := s.history.LoadHistory(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses":  result.Records,
		"count":     len(result.Records),
		"dropped":   result.Dropped,
		"corrupted": result.Corrupted,
	})
}

// handleGetAnalysis retrieves a single analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAnalysisID(w, r)
	if !ok {
		return
	}

	record, err := s.history.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleToggleSkill flips one skill's confidence and recomputes the score.
func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAnalysisID(w, r)
	if !ok {
		return
	}

	var req types.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Skill is required")
		return
	}

	record, err := s.history.ToggleSkillConfidence(r.Context(), id, req.Skill)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleExportAnalysis renders an analysis as plain text. The optional
// section query parameter selects plan, checklist or questions; the
// default is the full document with a download filename.
func (s *Server) handleExportAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAnalysisID(w, r)
	if !ok {
		return
	}

	record, err := s.history.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var text string
	switch section := r.URL.Query().Get("section"); section {
	case "plan":
		text = export.Plan(record)
	case "checklist":
		text = export.Checklist(record)
	case "questions":
		text = export.Questions(record)
	case "":
		text = export.Document(record)
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(record)+`"`)
	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: "+section)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		return
	}
}

// parseAnalysisID parses the {id} path value, writing a 400 on failure.
func (s *Server) parseAnalysisID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return uuid.Nil, false
	}
	return id, true
}
