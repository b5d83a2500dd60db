package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSellerHandlerFixture(t *testing.T) (*SellerHandler, *mockUsecase.MockSellerUsecase) {
	uc := mockUsecase.NewMockSellerUsecase(t)
	h := NewSellerHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

// The seller panel route carries the seller id under the sellerID param, not
// the owner routes' :id. The handler must read the param the route declares.
func TestSellerHandler_Panel_UsesSellerIDParam(t *testing.T) {
	h, uc := newSellerHandlerFixture(t)

	sellerID := int64(7)
	session := &entity.Session{UserID: "42", Role: entity.RoleAdmin, AdminForSellerID: &sellerID}
	seller := &entity.Seller{ID: 7, Name: "Fresh Foods", Verified: true}

	uc.EXPECT().
		GetSeller(mock.Anything, session, int64(7)).
		Return(seller, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sellers/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/sellers/:sellerID")
	c.SetParamNames("sellerID")
	c.SetParamValues("7")
	c.Set("session", session)

	require.NoError(t, h.Panel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fresh Foods")
}

func TestSellerHandler_Panel_InvalidSellerID(t *testing.T) {
	h, _ := newSellerHandlerFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sellers/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/sellers/:sellerID")
	c.SetParamNames("sellerID")
	c.SetParamValues("abc")

	require.NoError(t, h.Panel(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellerHandler_UpdateCredentials_Success(t *testing.T) {
	h, uc := newSellerHandlerFixture(t)

	session := &entity.Session{UserID: "1", Role: entity.RoleOwner}
	sellerID := int64(7)
	admin := &entity.User{
		ID:               42,
		Username:         "freshfoods",
		Password:         "new-password",
		Role:             entity.RoleAdmin,
		AdminForSellerID: &sellerID,
	}

	uc.EXPECT().
		UpdateAdminCredentials(mock.Anything, session, &usecase.UpdateAdminCredentialsInput{
			SellerID: 7,
			Username: "freshfoods",
			Password: "new-password",
		}).
		Return(admin, nil)

	e := echo.New()
	e.Validator = validator.New()
	body := `{"username":"freshfoods","password":"new-password"}`
	req := httptest.NewRequest(http.MethodPatch, "/owner/sellers/7/credentials", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/owner/sellers/:id/credentials")
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set("session", session)

	require.NoError(t, h.UpdateCredentials(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "freshfoods")
	assert.NotContains(t, rec.Body.String(), "new-password")
}

func TestSellerHandler_UpdateCredentials_MissingPasswordRejected(t *testing.T) {
	h, _ := newSellerHandlerFixture(t)

	e := echo.New()
	e.Validator = validator.New()
	body := `{"username":"freshfoods"}`
	req := httptest.NewRequest(http.MethodPatch, "/owner/sellers/7/credentials", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/owner/sellers/:id/credentials")
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set("session", &entity.Session{UserID: "1", Role: entity.RoleOwner})

	require.NoError(t, h.UpdateCredentials(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
