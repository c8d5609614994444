// Package server holds the configuration of the local HTTP surface.
package server
