// Package middleware groups the Fiber middleware used by the local HTTP
// surface. Each middleware lives in its own subpackage.
package middleware
