package webapi

import (
	"context"
	"strings"

	"github.com/fxmirror/fxmirror/pkg/currency"
	"github.com/fxmirror/fxmirror/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// RateService is the surface of the feed client the HTTP layer consumes.
type RateService interface {
	Currencies(ctx context.Context) (domain.CurrencyList, error)
	Rates(ctx context.Context, base string) (domain.RateTable, error)
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

// CurrencyRoutes registers HTTP routes for currency list, rate table,
// conversion and symbol lookups.
func CurrencyRoutes(app *fiber.App, svc RateService) {
	api := app.Group("/api")

	api.Get("/currencies", ListCurrencies(svc))
	api.Get("/rates/:base", GetRates(svc))
	api.Post("/convert", ConvertAmount(svc))
	api.Get("/symbols/:code", GetSymbol())
}

// ListCurrencies returns the code-to-name map of all known currencies.
func ListCurrencies(svc RateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.Currencies(c.Context())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to fetch currency list", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", list)
	}
}

// GetRates returns the rate table for the base currency in the path.
func GetRates(svc RateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		base := c.Params("base")
		if base == "" {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Base currency is required", nil)
		}

		table, err := svc.Rates(c.Context(), base)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to fetch rate table", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Rates fetched successfully", fiber.Map{
			"base":  strings.ToLower(base),
			"rates": table,
		})
	}
}

// ConvertAmount converts an amount between two currencies and returns the
// result with its formatted display string and target symbol.
func ConvertAmount(svc RateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[ConvertRequest](c)
		if err != nil {
			return nil // Error already written by BindAndValidate
		}

		converted, err := svc.Convert(c.Context(), input.Amount, input.From, input.To)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Conversion failed", err.Error())
		}

		resp := ConvertResponse{
			Amount:    input.Amount,
			From:      strings.ToLower(input.From),
			To:        strings.ToLower(input.To),
			Converted: converted,
			Formatted: currency.Format(converted, input.To),
			Symbol:    currency.Symbol(input.To),
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Converted successfully", resp)
	}
}

// GetSymbol returns the display symbol for a currency code.
func GetSymbol() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")
		if code == "" {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Currency code is required", nil)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Symbol fetched successfully", SymbolResponse{
			Code:   strings.ToUpper(code),
			Symbol: currency.Symbol(code),
		})
	}
}
