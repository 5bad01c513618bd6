// Package config loads vslot configuration.
//
// Values are layered with koanf: built-in defaults, then an optional JSON
// or YAML file, then SLOT_* environment variables. A double underscore in
// an environment variable name separates nested keys:
//
//	SLOT_DEV_MODE=true
//	SLOT_RENDER__PRETTY=true
//	SLOT_METRICS__NAMESPACE=shop
//
// Example vslot.yaml:
//
//	dev_mode: true
//	log_level: info
//	render:
//	  pretty: true
//	  hydration_ids: true
//	metrics:
//	  enabled: true
//	  namespace: vango
//	  subsystem: slot
package config
