package server

import (
	"encoding/json"
	"net/http"

	"github.com/rolemark/rolemark/internal/db"
	"github.com/rolemark/rolemark/internal/server/middleware"
	"github.com/rolemark/rolemark/internal/types"
	"go.uber.org/zap"
)

// handleCreateResume ingests a resume body and extracts its signals in the
// same request. Signals are regenerated, never patched, so a re-upload of the
// same candidate is a new resume row.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resume, err := s.db.CreateResume(r.Context(), userID, req.CandidateName, req.Text)
	if err != nil {
		s.log.Error("create resume failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create resume")
		return
	}

	signals := s.extractor.ExtractSignals(resume.RawText)
	if err := s.db.ReplaceSignals(r.Context(), resume.ID, signals); err != nil {
		s.log.Error("store signals failed", zap.Error(err), zap.String("resume_id", resume.ID.String()))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store extracted signals")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"resume":  resume,
		"signals": signals,
	})
}

// handleListResumes lists the authenticated user's resumes without raw text
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumesByUser(r.Context(), userID)
	if err != nil {
		s.log.Error("list resumes failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}

	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns a single resume including its raw text
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.authorizedResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes a resume along with its signals and breakdowns
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.authorizedResume(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), resume.ID); err != nil {
		s.log.Error("delete resume failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListSignals returns the stored extraction evidence for a resume
func (s *Server) handleListSignals(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.authorizedResume(w, r)
	if !ok {
		return
	}

	signals, err := s.db.ListSignalsByResume(r.Context(), resume.ID)
	if err != nil {
		s.log.Error("list signals failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list signals")
		return
	}
	if signals == nil {
		signals = []db.Signal{}
	}

	s.jsonResponse(w, http.StatusOK, signals)
}

// authorizedResume loads the resume from the {id} path value and checks
// ownership. Writes the error response itself.
func (s *Server) authorizedResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	resumeID, ok := s.pathUUID(w, r, "id", "resume")
	if !ok {
		return nil, false
	}

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.log.Error("get resume failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return nil, false
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return nil, false
	}
	if resume.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, "Resume belongs to another user")
		return nil, false
	}

	return resume, true
}
