// Package snapshot persists named snapshot slots in the local database.
//
// The catalog writes its full contents into a single slot after every
// successful render pass (write-through), so a later run can rehydrate the
// in-memory store without touching the network. A slot is one row keyed by
// name holding the serialized payload; saving always overwrites in full.
package snapshot
