// Package file provides the TOML configuration store.
//
// Settings live in ~/.sentiment/config.toml (or config.toml under
// --config-dir). Tables map to dotted keys, so [classifier] max_iterations
// is read as "classifier.max_iterations".
package file
