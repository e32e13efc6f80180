package domain

import "fmt"

// FetchError reports that both the primary and the fallback feed hosts
// failed to serve a resource.
type FetchError struct {
	Endpoint    string
	PrimaryURL  string
	FallbackURL string
	PrimaryErr  error
	FallbackErr error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: primary %s: %v; fallback %s: %v",
		e.Endpoint, e.PrimaryURL, e.PrimaryErr, e.FallbackURL, e.FallbackErr)
}

func (e *FetchError) Unwrap() error { return e.FallbackErr }

// RateNotFoundError reports a target currency missing from an otherwise
// successful rate table.
type RateNotFoundError struct {
	Currency string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no exchange rate for %q", e.Currency)
}
