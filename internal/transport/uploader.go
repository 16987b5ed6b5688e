// Package transport delivers enrollment payloads to their destination. The
// reconciliation core never talks to it directly; the CLI wires records from
// the store into a dispatcher.
package transport

import (
	"context"

	"macenroll/internal/conf"
)

// Uploader is the file-delivery collaborator. Implementations must tolerate
// concurrent Upload calls between Connect and Disconnect.
type Uploader interface {
	Connect(ctx context.Context, host string, creds conf.Credentials) error
	SelectShare(name string) error
	Upload(ctx context.Context, data []byte, path string) error
	Disconnect() error
}
