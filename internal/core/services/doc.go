// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// NormalizeSources validates source descriptors before a query cycle.
// CompletionService resolves configured sources and runs the pipeline.
package services
