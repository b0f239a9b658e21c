// Package metrics provides Prometheus metrics for reconciliation runs.
package metrics
