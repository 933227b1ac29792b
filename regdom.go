// Package regdom computes the registered domain (the organizational
// domain, e.g. example.com or example.co.uk) of a fully qualified
// hostname, using a compact encoding of the public suffix rule set.
package regdom

import (
	"context"

	"go.uber.org/zap"
)

// Version is the current version of regdom-go.
const Version = "1.2.0"

// Service is the common service abstraction in this module.
type Service interface {
	// ZapField returns a [zap.Field] that identifies the service.
	ZapField() zap.Field

	// Start starts the service.
	Start(ctx context.Context) error

	// Stop stops the service.
	Stop() error
}
