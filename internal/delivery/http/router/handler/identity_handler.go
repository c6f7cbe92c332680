package handler

import (
	"log/slog"
	"net/http"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHandler holds dependencies for identity-resolution handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

// IdentityResponse is the wire shape of a resolved identity projection. The
// kind field discriminates which of the optional payloads is present.
type IdentityResponse struct {
	Kind      string           `json:"kind"`
	AccountID int64            `json:"accountId"`
	Manager   *ManagerPayload  `json:"manager,omitempty"`
	Coach     *CoachPayload    `json:"coach,omitempty"`
	Customer  *CustomerPayload `json:"customer,omitempty"`
	Learner   *LearnerPayload  `json:"learner,omitempty"`
	Staff     *StaffPayload    `json:"staff,omitempty"`
}

// ManagerPayload carries the manager-specific projection fields.
type ManagerPayload struct {
	Department string `json:"department"`
	JobTitle   string `json:"jobTitle"`
}

// CoachPayload carries the coach-specific projection fields.
type CoachPayload struct {
	Level     string `json:"level"`
	Specialty string `json:"specialty"`
}

// CustomerPayload carries the customer-specific projection fields.
type CustomerPayload struct {
	MembershipLevel   string `json:"membershipLevel"`
	RemainingSessions int    `json:"remainingSessions"`
}

// LearnerPayload carries the learner-specific projection fields.
type LearnerPayload struct {
	CustomerID int64  `json:"customerId"`
	Grade      string `json:"grade"`
}

// StaffPayload carries the staff-specific projection fields.
type StaffPayload struct {
	Department string `json:"department"`
}

// Resolve handles GET /auth/identity/:role. The caller resolves their own
// session account against the declared role.
func (h *IdentityHandler) Resolve(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing session")
	}

	role := entity.Role(c.Param("role"))
	if !role.IsValid() {
		return errors.WithStack(domainerrors.ErrIdentityNotFound)
	}

	identity, err := h.uc.Resolve(c.Request().Context(), session.AccountID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity), "")
}

func toIdentityResponse(identity entity.Identity) *IdentityResponse {
	resp := &IdentityResponse{
		Kind:      string(identity.Kind()),
		AccountID: identity.Account(),
	}

	switch projection := identity.(type) {
	case *entity.Manager:
		resp.Manager = &ManagerPayload{Department: projection.Department, JobTitle: projection.JobTitle}
	case *entity.Coach:
		resp.Coach = &CoachPayload{Level: projection.Level, Specialty: projection.Specialty}
	case *entity.Customer:
		resp.Customer = &CustomerPayload{MembershipLevel: projection.MembershipLevel, RemainingSessions: projection.RemainingSessions}
	case *entity.Learner:
		resp.Learner = &LearnerPayload{CustomerID: projection.CustomerID, Grade: projection.Grade}
	case *entity.Staff:
		resp.Staff = &StaffPayload{Department: projection.Department}
	}

	return resp
}
