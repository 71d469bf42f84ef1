package repository

import "context"

// LogoRepository looks up an airline logo by carrier code. A nil URL with a
// nil error means the provider has no logo for that carrier.
type LogoRepository interface {
	AirlineLogoURL(ctx context.Context, carrierCode string) (*string, error)
}
