// Package config holds the fleet configuration model, the load chain
// (flags > environment > distribute.yaml > built-in defaults), validation,
// the interactive setup wizard, and the named constants of the system.
package config
