// Package utils contains small conversion helpers shared across packages,
// mainly for coercing the loosely typed values found in remote JSON records.
package utils
