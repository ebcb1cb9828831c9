package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/intersync-backend/internal/catalog"
	"github.com/jonathan/intersync-backend/internal/jd"
	"github.com/jonathan/intersync-backend/internal/pipeline"
	"github.com/jonathan/intersync-backend/internal/ranking"
	"github.com/jonathan/intersync-backend/internal/skills"
	"github.com/jonathan/intersync-backend/internal/types"
)

// suggestionCount is how many catalog projects the suggest endpoint returns.
const suggestionCount = 3

// SuggestedProject is one entry in the suggest response, a scored catalog
// entry plus ready-to-use resume bullets.
type SuggestedProject struct {
	ranking.ScoredEntry
	ResumeBullets []string `json:"resume_bullets"`
}

// handleBuildResume runs the full pipeline and returns the record, the
// rendered document, and the suggested projects as JSON.
func (s *Server) handleBuildResume(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runBuild(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleBuildResumeTex runs the full pipeline and returns only the rendered
// document as a downloadable attachment.
func (s *Server) handleBuildResumeTex(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runBuild(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/x-tex; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.tex")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.Document)); err != nil {
		log.Printf("Error writing document response: %v", err)
	}
}

// runBuild decodes, validates, and executes a build request. On failure it
// writes the error response and returns ok=false.
func (s *Server) runBuild(w http.ResponseWriter, r *http.Request) (pipeline.Result, bool) {
	var req types.BuildResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON in request body")
		return pipeline.Result{}, false
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), validationMessage(err))
		return pipeline.Result{}, false
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobDescriptionURL != "" {
		fetched, err := jd.Fetch(r.Context(), req.JobDescriptionURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return pipeline.Result{}, false
		}
		jobDescription = fetched
	}

	result, err := pipeline.Run(r.Context(), pipeline.Options{
		TargetRole:     req.TargetRole,
		JobDescription: jobDescription,
		Candidate:      req.Candidate,
		Catalog:        s.catalog,
		Tailor:         s.tailor,
		DisableAI:      req.DisableAI,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return pipeline.Result{}, false
	}
	return result, true
}

// handleSuggestProjects scores the catalog against the candidate's interests
// and skills and returns the top entries with resume bullets.
func (s *Server) handleSuggestProjects(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	scored := ranking.Rank(req.Interests, req.Skills, s.catalog)
	if len(scored) > suggestionCount {
		scored = scored[:suggestionCount]
	}

	suggestions := make([]SuggestedProject, 0, len(scored))
	for _, entry := range scored {
		suggestions = append(suggestions, SuggestedProject{
			ScoredEntry:   entry,
			ResumeBullets: catalog.ResumeBullets(entry.Entry),
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// handleSkillGraph builds the skill-growth graph for the given skills.
func (s *Server) handleSkillGraph(w http.ResponseWriter, r *http.Request) {
	var req types.SkillGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), validationMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, skills.Build(req.Skills, s.catalog))
}
