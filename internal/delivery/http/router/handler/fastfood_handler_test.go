package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	custommw "bakehouse/internal/delivery/http/middleware"
	"bakehouse/internal/domain/entity"
	mockRepo "bakehouse/internal/mocks/repository"
	"bakehouse/internal/usecase/impl"
)

type fastFoodHandlerFixtures struct {
	handler  *FastFoodHandler
	errorMW  *custommw.ErrorMiddleware
	fastFood *mockRepo.MockFastFoodRepository
	echo     *echo.Echo
}

func createTestFastFoodHandler(t *testing.T) fastFoodHandlerFixtures {
	products := mockRepo.NewMockProductRepository(t)
	fastFood := mockRepo.NewMockFastFoodRepository(t)
	uc := impl.NewCatalogService(products, fastFood, slog.Default())

	return fastFoodHandlerFixtures{
		handler:  NewFastFoodHandler(uc, slog.Default()),
		errorMW:  custommw.NewErrorMiddleware(slog.Default()),
		fastFood: fastFood,
		echo:     echo.New(),
	}
}

func (f fastFoodHandlerFixtures) serve(c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		f.errorMW.HandleHTTPError(err, c)
	}
}

func TestFastFoodHandler_Get_RendersTierNulls(t *testing.T) {
	fx := createTestFastFoodHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/fastfood/ff3", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ff3")

	full := 60
	fx.fastFood.On("FindByID", req.Context(), "ff3").Return(&entity.FastFoodItem{
		ID:       "ff3",
		Name:     "Paneer Roll",
		Category: "Rolls",
		Prices:   entity.PriceTiers{Full: &full},
	}, nil)

	fx.serve(c, fx.handler.Get)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"half":null`, "an unoffered tier stays null on the wire")
	assert.Contains(t, body, `"full":60`)
}

func TestFastFoodHandler_Create_ZeroTierSurvives(t *testing.T) {
	fx := createTestFastFoodHandler(t)

	body := `{"id":"ff20","name":"Tasting Momo","category":"Momos","prices":{"half":0,"full":50}}`
	req := httptest.NewRequest(http.MethodPost, "/api/fastfood", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.fastFood.On("Create", req.Context(), mock.MatchedBy(func(item *entity.FastFoodItem) bool {
		return item.Prices.Half != nil && *item.Prices.Half == 0
	})).Return(nil)

	fx.serve(c, fx.handler.Create)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":"ff20"}`, rec.Body.String())
}
