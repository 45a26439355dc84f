// Package driving declares what the CLI and the input watcher may ask of the
// core: run days, read history and manage settings. internal/core/services
// implements every interface here.
package driving
