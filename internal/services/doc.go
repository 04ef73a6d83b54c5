// Package services holds cross-cutting helpers shared by the transformation
// engine and its collaborators: sentinel error kinds with a wrapping helper,
// and context plumbing for run correlation identifiers.
package services
