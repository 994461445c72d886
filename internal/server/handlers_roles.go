package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rolemark/rolemark/internal/db"
	"github.com/rolemark/rolemark/internal/server/middleware"
	"github.com/rolemark/rolemark/internal/types"
	"github.com/rolemark/rolemark/internal/validation"
	"go.uber.org/zap"
)

// handleCreateRole creates a hiring role for the authenticated user
func (s *Server) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	role, err := s.db.CreateRole(r.Context(), userID, req.Title, req.JobDescription)
	if err != nil {
		s.log.Error("create role failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create role")
		return
	}

	s.jsonResponse(w, http.StatusCreated, role)
}

// handleListRoles lists the authenticated user's roles
func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	roles, err := s.db.ListRolesByUser(r.Context(), userID)
	if err != nil {
		s.log.Error("list roles failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list roles")
		return
	}
	if roles == nil {
		roles = []db.Role{}
	}

	s.jsonResponse(w, http.StatusOK, roles)
}

// handleGetRole returns a single role owned by the authenticated user
func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	role, ok := s.authorizedRole(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, role)
}

// handleDeleteRole deletes a role and everything attached to it
func (s *Server) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	role, ok := s.authorizedRole(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteRole(r.Context(), role.ID); err != nil {
		s.log.Error("delete role failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete role")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCreateCriterion adds a scoring criterion to a role. The config
// document is validated against the schema for its type before persisting.
func (s *Server) handleCreateCriterion(w http.ResponseWriter, r *http.Request) {
	role, ok := s.authorizedRole(w, r)
	if !ok {
		return
	}

	var req types.CreateCriterionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if err := validation.ValidateConfig(req.Type, req.Config); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	criterion, err := s.db.CreateCriterion(r.Context(), role.ID, req.Name, req.Weight, string(req.Type), req.Config)
	if err != nil {
		s.log.Error("create criterion failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create criterion")
		return
	}

	s.jsonResponse(w, http.StatusCreated, criterion)
}

// handleListCriteria lists a role's criteria
func (s *Server) handleListCriteria(w http.ResponseWriter, r *http.Request) {
	role, ok := s.authorizedRole(w, r)
	if !ok {
		return
	}

	criteria, err := s.db.ListCriteriaByRole(r.Context(), role.ID)
	if err != nil {
		s.log.Error("list criteria failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list criteria")
		return
	}
	if criteria == nil {
		criteria = []db.Criterion{}
	}

	s.jsonResponse(w, http.StatusOK, criteria)
}

// handleDeleteCriterion removes a criterion from a role the user owns
func (s *Server) handleDeleteCriterion(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	criterionID, ok := s.pathUUID(w, r, "id", "criterion")
	if !ok {
		return
	}

	criterion, err := s.db.GetCriterion(r.Context(), criterionID)
	if err != nil {
		s.log.Error("get criterion failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get criterion")
		return
	}
	if criterion == nil {
		s.errorResponse(w, http.StatusNotFound, "Criterion not found")
		return
	}

	role, err := s.db.GetRole(r.Context(), criterion.RoleID)
	if err != nil || role == nil {
		s.errorResponse(w, http.StatusNotFound, "Role not found")
		return
	}
	if role.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, "Criterion belongs to another user")
		return
	}

	if err := s.db.DeleteCriterion(r.Context(), criterionID); err != nil {
		s.log.Error("delete criterion failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete criterion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizedRole loads the role from the {id} path value and checks it
// belongs to the authenticated user. Writes the error response itself.
func (s *Server) authorizedRole(w http.ResponseWriter, r *http.Request) (*db.Role, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	roleID, ok := s.pathUUID(w, r, "id", "role")
	if !ok {
		return nil, false
	}

	role, err := s.db.GetRole(r.Context(), roleID)
	if err != nil {
		s.log.Error("get role failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get role")
		return nil, false
	}
	if role == nil {
		s.errorResponse(w, http.StatusNotFound, "Role not found")
		return nil, false
	}
	if role.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, "Role belongs to another user")
		return nil, false
	}

	return role, true
}

// pathUUID parses a UUID path value, writing a 400 when it is malformed
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}
