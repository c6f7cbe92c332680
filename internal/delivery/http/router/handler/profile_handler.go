// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProfileResponse is the wire shape of a profile view. Masked fields render
// as their zero values on the basic view.
type ProfileResponse struct {
	AccountID   int64              `json:"accountId"`
	Nickname    string             `json:"nickname"`
	Gender      string             `json:"gender"`
	BirthDate   *string            `json:"birthDate,omitempty"`
	AvatarURL   string             `json:"avatarUrl"`
	Email       string             `json:"email,omitempty"`
	Signature   string             `json:"signature,omitempty"`
	AccessGroup []string           `json:"accessGroup"`
	Address     string             `json:"address,omitempty"`
	Phone       string             `json:"phone"`
	Tags        []string           `json:"tags,omitempty"`
	Geographic  *entity.Geographic `json:"geographic,omitempty"`
	NotifyCount int                `json:"notifyCount"`
	UnreadCount int                `json:"unreadCount"`
	UserState   string             `json:"userState"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// UpdateProfileResponse wraps the post-update view with the change flag.
type UpdateProfileResponse struct {
	Profile *ProfileResponse `json:"profile"`
	Updated bool             `json:"updated"`
}

// GetProfile handles GET /profile/:accountId. The optional detail query
// parameter selects the "full" (default) or "basic" view.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing session")
	}

	targetID, err := strconv.ParseInt(c.Param("accountId"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidTarget)
	}

	detail := usecase.DetailFull
	if c.QueryParam("detail") == string(usecase.DetailBasic) {
		detail = usecase.DetailBasic
	}

	view, err := h.uc.GetVisibleProfile(c.Request().Context(), session, targetID, detail)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(view), "")
}

// UpdateProfile handles PATCH /profile/:accountId. Absent JSON fields are
// left untouched; the response always carries the full post-update view.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing session")
	}

	targetID, err := strconv.ParseInt(c.Param("accountId"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidTarget)
	}

	var patch *usecase.UpdateUserInfoInput
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	view, updated, err := h.uc.UpdateVisibleProfile(c.Request().Context(), session, targetID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &UpdateProfileResponse{
		Profile: toProfileResponse(view),
		Updated: updated,
	}, "Profile updated")
}

func toProfileResponse(info *entity.UserInfo) *ProfileResponse {
	return &ProfileResponse{
		AccountID:   info.AccountID,
		Nickname:    info.Nickname,
		Gender:      string(info.Gender),
		BirthDate:   info.BirthDate,
		AvatarURL:   info.AvatarURL,
		Email:       info.Email,
		Signature:   info.Signature,
		AccessGroup: info.AccessGroup.ToStrings(),
		Address:     info.Address,
		Phone:       info.Phone,
		Tags:        info.Tags,
		Geographic:  info.Geographic,
		NotifyCount: info.NotifyCount,
		UnreadCount: info.UnreadCount,
		UserState:   string(info.UserState),
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
