package ports

import "context"

// ReportGenerator turns a combined transcript blob into a coaching report.
type ReportGenerator interface {
	// Generate submits one synchronous generation request authenticated with
	// apiKey and returns the raw markdown produced. The key is scoped to this
	// call only. Guard failures (empty key, empty blob) never reach the network.
	Generate(ctx context.Context, transcriptBlob, apiKey string) (string, error)
}
