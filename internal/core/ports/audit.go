package ports

import "context"

// AuditSink records accepted operations. Implementations are best-effort:
// Record never returns an error and must not fail the calling operation.
type AuditSink interface {
	Record(ctx context.Context, method, path, userID string, body any)
}
