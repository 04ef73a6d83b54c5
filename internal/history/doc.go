// Package history persists conversion attempts in a local SQLite database so
// past runs can be inspected with the history command. Recording is best
// effort and never blocks or fails a conversion run.
package history
