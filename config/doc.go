// Package config loads process-level settings from the environment —
// worker concurrency, log level, and whether unknown-layer names in
// render_settings abort the process or are skipped — via envconfig, the
// way jmartynas-pss-backend's service config is built.
package config
