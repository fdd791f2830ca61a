// Package kernel provides the domain primitives shared by the catalog and order models.
//
// The package includes:
//   - ID: a positive integer identity assigned by the backend to products and orders
//   - Money: an exact, non-negative decimal amount backed by github.com/shopspring/decimal
//
// Both are immutable value types and safe for concurrent use. Money never goes through
// float64 arithmetic, so 9.99 × 3 is exactly 29.97.
package kernel
