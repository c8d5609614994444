// Package catalog implements the book catalog and its optimistic-update
// core.
//
// The Store is the single in-memory collection of records, hydrated from a
// persistent snapshot slot and written back after every render pass. The
// Engine wraps each create, update and delete in a three-state transaction:
// the local mutation is applied immediately so the surface stays
// responsive, the matching network call follows, and the transaction either
// commits the server's authoritative response or rolls the store back to
// the snapshot captured at mutation time.
//
// Normalization maps heterogeneous remote record shapes onto the canonical
// Book via a declarative alias table; validation rejects malformed input
// before anything is mutated. Presentation surfaces plug in through the
// Notifier contract and the Service/Handler pair.
package catalog
