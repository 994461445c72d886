package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rolemark/rolemark/internal/db"
	"github.com/rolemark/rolemark/internal/evaluation"
	"github.com/rolemark/rolemark/internal/scoring"
	"github.com/rolemark/rolemark/internal/server/middleware"
	"github.com/rolemark/rolemark/internal/types"
	"go.uber.org/zap"
)

// handleEvaluate scores a batch of resumes against a role's criteria and
// persists one breakdown per resume. Re-running overwrites prior breakdowns
// for the same (role, resume) pair.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	role, ok := s.authorizedRole(w, r)
	if !ok {
		return
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	dbCriteria, err := s.db.ListCriteriaByRole(r.Context(), role.ID)
	if err != nil {
		s.log.Error("list criteria failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load criteria")
		return
	}
	criteria := convertDBCriteria(dbCriteria)

	candidates := make([]evaluation.Candidate, 0, len(req.ResumeIDs))
	names := make(map[uuid.UUID]string, len(req.ResumeIDs))
	for _, resumeID := range req.ResumeIDs {
		resume, err := s.db.GetResume(r.Context(), resumeID)
		if err != nil {
			s.log.Error("get resume failed", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
			return
		}
		if resume == nil {
			s.errorResponse(w, http.StatusNotFound, "Resume not found: "+resumeID.String())
			return
		}
		if resume.UserID != userID {
			s.errorResponse(w, http.StatusForbidden, "Resume belongs to another user")
			return
		}

		dbSignals, err := s.db.ListSignalsByResume(r.Context(), resume.ID)
		if err != nil {
			s.log.Error("list signals failed", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load signals")
			return
		}
		signals := convertDBSignals(dbSignals)
		if len(signals) == 0 {
			// Older resumes may predate extraction; regenerate on the fly.
			signals = s.extractor.ExtractSignals(resume.RawText)
		}

		names[resume.ID] = resume.CandidateName
		candidates = append(candidates, evaluation.Candidate{
			ResumeID: resume.ID,
			Text:     resume.RawText,
			Signals:  signals,
		})
	}

	opts := evaluation.Options{EnforceWeightSum: s.enforceWeightSum}
	results, err := evaluation.EvaluateBatch(r.Context(), criteria, candidates, opts)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	for _, res := range results {
		if err := s.db.UpsertBreakdown(r.Context(), role.ID, res.ResumeID, res.Breakdown); err != nil {
			s.log.Error("upsert breakdown failed", zap.Error(err),
				zap.String("resume_id", res.ResumeID.String()))
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store breakdown")
			return
		}
	}

	ranked := evaluation.Rank(results)
	out := make([]evaluationResult, 0, len(ranked))
	for i, res := range ranked {
		out = append(out, evaluationResult{
			Rank:          i + 1,
			ResumeID:      res.ResumeID,
			CandidateName: names[res.ResumeID],
			Breakdown:     res.Breakdown,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_id": role.ID,
		"results": out,
	})
}

// evaluationResult is one ranked entry in an evaluation response
type evaluationResult struct {
	Rank          int                   `json:"rank"`
	ResumeID      uuid.UUID             `json:"resume_id"`
	CandidateName string                `json:"candidate_name,omitempty"`
	Breakdown     *types.ScoreBreakdown `json:"breakdown"`
}

// handleRankings returns the stored breakdowns for a role ordered best-first
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	role, ok := s.authorizedRole(w, r)
	if !ok {
		return
	}

	breakdowns, err := s.db.ListBreakdownsByRole(r.Context(), role.ID)
	if err != nil {
		s.log.Error("list breakdowns failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list rankings")
		return
	}

	out := make([]rankingEntry, 0, len(breakdowns))
	for i, b := range breakdowns {
		entry := rankingEntry{
			Rank:          i + 1,
			ResumeID:      b.ResumeID,
			TotalScore:    b.TotalScore,
			TotalScorePct: b.TotalScorePct,
		}
		if resume, err := s.db.GetResume(r.Context(), b.ResumeID); err == nil && resume != nil {
			entry.CandidateName = resume.CandidateName
		}
		out = append(out, entry)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_id":  role.ID,
		"rankings": out,
	})
}

// rankingEntry is one row of a role's stored ranking
type rankingEntry struct {
	Rank          int       `json:"rank"`
	ResumeID      uuid.UUID `json:"resume_id"`
	CandidateName string    `json:"candidate_name,omitempty"`
	TotalScore    float64   `json:"total_score"`
	TotalScorePct float64   `json:"total_score_pct"`
}

// handleCompare explains the score difference between two resumes that have
// already been evaluated against the same role.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	role, err := s.db.GetRole(r.Context(), req.RoleID)
	if err != nil {
		s.log.Error("get role failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get role")
		return
	}
	if role == nil {
		s.errorResponse(w, http.StatusNotFound, "Role not found")
		return
	}
	if role.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, "Role belongs to another user")
		return
	}

	left, ok := s.storedBreakdown(w, r, role.ID, req.ResumeAID)
	if !ok {
		return
	}
	right, ok := s.storedBreakdown(w, r, role.ID, req.ResumeBID)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_id":           role.ID,
		"resume_a_id":       req.ResumeAID,
		"resume_b_id":       req.ResumeBID,
		"total_score_a_pct": left.TotalScorePct,
		"total_score_b_pct": right.TotalScorePct,
		"explanation":       scoring.Explain(left, right),
	})
}

// storedBreakdown loads the persisted breakdown for a (role, resume) pair and
// rehydrates it into its scoring form. A missing row means the resume has not
// been evaluated against the role yet.
func (s *Server) storedBreakdown(w http.ResponseWriter, r *http.Request, roleID, resumeID uuid.UUID) (*types.ScoreBreakdown, bool) {
	stored, err := s.db.GetBreakdown(r.Context(), roleID, resumeID)
	if err != nil {
		s.log.Error("get breakdown failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load breakdown")
		return nil, false
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume has not been evaluated against this role: "+resumeID.String())
		return nil, false
	}

	scores, err := stored.DecodeCriterionScores()
	if err != nil {
		s.log.Error("decode breakdown failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to decode breakdown")
		return nil, false
	}

	return &types.ScoreBreakdown{
		CriterionScores: scores,
		TotalScore:      stored.TotalScore,
		TotalScorePct:   stored.TotalScorePct,
	}, true
}

// convertDBCriteria maps stored criteria rows into their scoring form
func convertDBCriteria(rows []db.Criterion) []types.Criterion {
	out := make([]types.Criterion, 0, len(rows))
	for _, c := range rows {
		out = append(out, types.Criterion{
			ID:     c.ID,
			RoleID: c.RoleID,
			Name:   c.Name,
			Weight: c.Weight,
			Type:   types.CriterionType(c.Type),
			Config: c.Config,
		})
	}
	return out
}

// convertDBSignals maps stored signal rows into their scoring form
func convertDBSignals(rows []db.Signal) []types.Signal {
	out := make([]types.Signal, 0, len(rows))
	for _, sig := range rows {
		out = append(out, types.Signal{
			ResumeID:        sig.ResumeID,
			Type:            types.SignalType(sig.Type),
			Value:           sig.Value,
			EvidenceSnippet: sig.EvidenceSnippet,
			Confidence:      types.Confidence(sig.Confidence),
		})
	}
	return out
}
