// Package catalog models the purchasable products supplied by the backend.
//
// The package includes:
//   - Product: an immutable entry (id, name, unit price)
//   - Catalog: the read-only set of products loaded once per editing session and
//     handed by reference to the line item builder
//
// Key business rules:
//   - Product ids are positive and unique within a catalog
//   - Names are non-empty, unit prices are non-negative
package catalog
