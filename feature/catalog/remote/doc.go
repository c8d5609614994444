// Package remote is the thin gateway to the remote catalog resource.
//
// The resource is a generic JSON collection endpoint: GET <base>?_limit=N,
// POST <base>, PUT <base>/<id>, DELETE <base>/<id>. Any non-success status
// or transport failure surfaces as *NetworkError; the gateway never
// retries, retry policy belongs to callers (and the reconciliation engine
// deliberately has none: a failed call always rolls back).
package remote
