package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockUsecase "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileTestContext(t *testing.T, method, target string, body string) (*ProfileHandler, *mockUsecase.MockProfileUsecase, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	uc := mockUsecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProfileHandler(uc, logger)

	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return h, uc, c, rec
}

func TestProfileHandler_GetProfile(t *testing.T) {
	h, uc, c, rec := newProfileTestContext(t, http.MethodGet, "/profile/7", "")
	c.SetParamNames("accountId")
	c.SetParamValues("7")

	session := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	c.Set(string(deliverycontext.KeySession), session)

	view := &entity.UserInfo{
		AccountID:   7,
		Nickname:    "nick",
		Gender:      entity.GenderSecret,
		AccessGroup: entity.Roles{entity.RoleLearner},
		UserState:   entity.UserStateActive,
	}
	uc.EXPECT().
		GetVisibleProfile(mock.Anything, session, int64(7), usecase.DetailFull).
		Return(view, nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"accountId":7`)
	assert.Contains(t, body, `"nickname":"nick"`)
	assert.Contains(t, body, `"userState":"active"`)
}

func TestProfileHandler_GetProfile_BasicDetail(t *testing.T) {
	h, uc, c, _ := newProfileTestContext(t, http.MethodGet, "/profile/7?detail=basic", "")
	c.SetParamNames("accountId")
	c.SetParamValues("7")

	session := usecase.Session{AccountID: 9, Roles: entity.Roles{entity.RoleAdmin}}
	c.Set(string(deliverycontext.KeySession), session)

	uc.EXPECT().
		GetVisibleProfile(mock.Anything, session, int64(7), usecase.DetailBasic).
		Return(&entity.UserInfo{AccountID: 7}, nil)

	require.NoError(t, h.GetProfile(c))
}

func TestProfileHandler_GetProfile_MissingSession(t *testing.T) {
	h, _, c, rec := newProfileTestContext(t, http.MethodGet, "/profile/7", "")
	c.SetParamNames("accountId")
	c.SetParamValues("7")

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_GetProfile_BadAccountID(t *testing.T) {
	h, _, c, _ := newProfileTestContext(t, http.MethodGet, "/profile/abc", "")
	c.SetParamNames("accountId")
	c.SetParamValues("abc")

	session := usecase.Session{AccountID: 9, Roles: entity.Roles{entity.RoleAdmin}}
	c.Set(string(deliverycontext.KeySession), session)

	err := h.GetProfile(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTarget)
}

func TestProfileHandler_GetProfile_AccessDeniedPropagates(t *testing.T) {
	h, uc, c, _ := newProfileTestContext(t, http.MethodGet, "/profile/8", "")
	c.SetParamNames("accountId")
	c.SetParamValues("8")

	session := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	c.Set(string(deliverycontext.KeySession), session)

	uc.EXPECT().
		GetVisibleProfile(mock.Anything, session, int64(8), usecase.DetailFull).
		Return(nil, domainerrors.ErrAccessDenied)

	err := h.GetProfile(c)

	// The error middleware maps AppError to its HTTP shape; the handler only
	// propagates it.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	h, uc, c, rec := newProfileTestContext(t, http.MethodPatch, "/profile/7", `{"nickname":"fresh"}`)
	c.SetParamNames("accountId")
	c.SetParamValues("7")

	session := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	c.Set(string(deliverycontext.KeySession), session)

	uc.EXPECT().
		UpdateVisibleProfile(mock.Anything, session, int64(7), mock.AnythingOfType("*usecase.UpdateUserInfoInput")).
		RunAndReturn(func(_ context.Context, _ usecase.Session, _ int64, patch *usecase.UpdateUserInfoInput) (*entity.UserInfo, bool, error) {
			require.NotNil(t, patch.Nickname)
			assert.Equal(t, "fresh", *patch.Nickname)

			return &entity.UserInfo{AccountID: 7, Nickname: "fresh"}, true, nil
		})

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"updated":true`)
	assert.Contains(t, body, `"nickname":"fresh"`)
}

func TestProfileHandler_UpdateProfile_NoopReportsNotUpdated(t *testing.T) {
	h, uc, c, rec := newProfileTestContext(t, http.MethodPatch, "/profile/7", `{}`)
	c.SetParamNames("accountId")
	c.SetParamValues("7")

	session := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	c.Set(string(deliverycontext.KeySession), session)

	uc.EXPECT().
		UpdateVisibleProfile(mock.Anything, session, int64(7), mock.AnythingOfType("*usecase.UpdateUserInfoInput")).
		Return(&entity.UserInfo{AccountID: 7}, false, nil)

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":false`)
}
