package webapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fxmirror/fxmirror/pkg/config"
	"github.com/fxmirror/fxmirror/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRateService serves canned payloads, or a fixed error when err is set.
type stubRateService struct {
	currencies domain.CurrencyList
	rates      domain.RateTable
	err        error
}

func (s *stubRateService) Currencies(context.Context) (domain.CurrencyList, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.currencies, nil
}

func (s *stubRateService) Rates(_ context.Context, base string) (domain.RateTable, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func (s *stubRateService) Convert(_ context.Context, amount float64, from, to string) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if strings.EqualFold(from, to) {
		return amount, nil
	}
	rate, ok := s.rates[strings.ToLower(to)]
	if !ok {
		return 0, &domain.RateNotFoundError{Currency: strings.ToLower(to)}
	}
	return amount * rate, nil
}

func newTestApp(svc RateService) *fiber.App {
	cfg := &config.App{
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
	return NewApp(svc, cfg)
}

func decodeResponse(t *testing.T, resp *http.Response) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestListCurrencies(t *testing.T) {
	app := newTestApp(&stubRateService{
		currencies: domain.CurrencyList{"usd": "US Dollar", "eur": "Euro"},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/currencies", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "US Dollar", data["usd"])
}

func TestListCurrencies_FeedUnavailable(t *testing.T) {
	app := newTestApp(&stubRateService{
		err: &domain.FetchError{Endpoint: "/currencies.json"},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/currencies", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/problem+json")
}

func TestGetRates(t *testing.T) {
	app := newTestApp(&stubRateService{
		rates: domain.RateTable{"eur": 0.9},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/rates/USD", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "usd", data["base"])

	rates, ok := data["rates"].(map[string]any)
	require.True(t, ok)
	assert.InEpsilon(t, 0.9, rates["eur"].(float64), 0.0001)
}

func TestConvertAmount(t *testing.T) {
	app := newTestApp(&stubRateService{
		rates: domain.RateTable{"eur": 0.9},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/convert",
		strings.NewReader(`{"amount":2,"from":"USD","to":"EUR"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)

	var data ConvertResponse
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.InEpsilon(t, 1.8, data.Converted, 0.0001)
	assert.Equal(t, "1.80", data.Formatted)
	assert.Equal(t, "€", data.Symbol)
	assert.Equal(t, "usd", data.From)
	assert.Equal(t, "eur", data.To)
}

func TestConvertAmount_ValidationFailure(t *testing.T) {
	app := newTestApp(&stubRateService{})

	req := httptest.NewRequest(http.MethodPost, "/api/convert",
		strings.NewReader(`{"amount":2,"from":"USD"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConvertAmount_RateNotFound(t *testing.T) {
	app := newTestApp(&stubRateService{
		rates: domain.RateTable{"eur": 0.9},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/convert",
		strings.NewReader(`{"amount":2,"from":"USD","to":"ZZZ"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetSymbol(t *testing.T) {
	app := newTestApp(&stubRateService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/symbols/jpy", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "JPY", data["code"])
	assert.Equal(t, "¥", data["symbol"])
}

func TestRootLiveness(t *testing.T) {
	app := newTestApp(&stubRateService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
