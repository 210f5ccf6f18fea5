// Package observability provides structured logger construction.
package observability

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger. Verbose mode uses the
// human-readable development encoder at debug level; otherwise JSON at info.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
