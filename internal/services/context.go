package services

import "context"

type contextKey string

const runIDKey contextKey = "run_id"

// WithRunID stores a run correlation identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run correlation identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(runIDKey).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
