package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	custommw "bakehouse/internal/delivery/http/middleware"
	mockSvc "bakehouse/internal/mocks/service"
	"bakehouse/internal/usecase/impl"
)

type sessionHandlerFixtures struct {
	handler  *SessionHandler
	errorMW  *custommw.ErrorMiddleware
	verifier *mockSvc.MockCredentialVerifier
	tokens   *mockSvc.MockTokenService
	echo     *echo.Echo
}

func createTestSessionHandler(t *testing.T) sessionHandlerFixtures {
	verifier := mockSvc.NewMockCredentialVerifier(t)
	tokens := mockSvc.NewMockTokenService(t)
	uc := impl.NewSessionService(verifier, tokens, slog.Default())

	return sessionHandlerFixtures{
		handler:  NewSessionHandler(uc, slog.Default()),
		errorMW:  custommw.NewErrorMiddleware(slog.Default()),
		verifier: verifier,
		tokens:   tokens,
		echo:     echo.New(),
	}
}

func (f sessionHandlerFixtures) serve(c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		f.errorMW.HandleHTTPError(err, c)
	}
}

func TestSessionHandler_Login(t *testing.T) {
	fx := createTestSessionHandler(t)

	fx.verifier.On("Verify", "admin", "admin@123").Return(true)
	fx.tokens.On("GenerateToken", "admin").Return("signed.jwt", nil)

	body := `{"username":"admin","password":"admin@123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.serve(c, fx.handler.Login)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"token":"signed.jwt"}`, rec.Body.String())
}

func TestSessionHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestSessionHandler(t)

	fx.verifier.On("Verify", "admin", "guess").Return(false)

	body := `{"username":"admin","password":"guess"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.serve(c, fx.handler.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
