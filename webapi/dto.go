package webapi

// ConvertRequest is the body of POST /api/convert.
type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	From   string  `json:"from" validate:"required,alpha,min=3,max=4"`
	To     string  `json:"to" validate:"required,alpha,min=3,max=4"`
}

// ConvertResponse carries the converted amount alongside its display form.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
	Symbol    string  `json:"symbol"`
}

// SymbolResponse is the body of GET /api/symbols/:code.
type SymbolResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}
