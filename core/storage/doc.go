// Package storage provides the S3-compatible client used for snapshot
// backups.
//
// The catalog's persistent snapshot lives in the local database; this
// package pushes and pulls that snapshot to an object storage bucket so a
// catalog can be moved between machines or kept off-site. The Client
// interface wraps the Minio SDK; hand-written testify mocks live in the
// mocks subpackage.
package storage
