// Package keepsake holds module-wide metadata.
package keepsake

// Version is the current keepsake release version.
const Version = "0.1.0"
