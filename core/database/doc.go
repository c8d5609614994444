// Package database manages the connection to the local catalog database.
//
// The catalog is a client-side tool, so the default driver is sqlite with a
// plain database file; mysql is available for setups that prefer a shared
// server. Connections are opened through GORM with conservative pool
// settings and an initial ping to fail fast on misconfiguration.
package database
