// Package providers defines the capability contract for external data
// sources and the concrete HTTP clients behind it. A provider resolves one
// identifier of a fixed type; everything that can go wrong surfaces as a
// typed *Error, never a panic.
package providers

import "context"

// Client resolves one identifier into a canonical record of type R. Resolve
// must honor ctx cancellation; per-attempt timeouts are the pipeline's job.
type Client[R any] interface {
	Name() string
	Resolve(ctx context.Context, id string) (R, error)
}
