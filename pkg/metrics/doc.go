// Package metrics exports slot composition outcomes to Prometheus.
//
// A Collector is a slot.Observer; pass it to slot.WithObserver. Rejected
// compositions are counted whether or not development diagnostics are on,
// which makes production-only slot misuse visible on a dashboard.
package metrics
