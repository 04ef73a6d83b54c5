// Package convert executes the job list produced by the transformation
// engine, invoking the external transcoder once per job, sequentially and in
// job order.
package convert
