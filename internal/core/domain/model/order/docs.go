// Package order provides the order composition model: line items, the mutable
// draft a user builds before submitting, and the read model of a persisted order.
//
// The package includes:
//   - LineItem: a product snapshot (name, unit price) plus a positive quantity
//   - Draft: the in-memory composition of line items with its number and date
//   - Number and Date: the immutable metadata of a draft
//   - Status: the closed set of order states and the transitions between them
//   - Order: a persisted order as returned by the backend
//
// Key business rules:
//   - A line item's total price is unit price × quantity and is never stored
//   - A product appears at most once in a draft
//   - A draft's totals are recomputed from its line items on every read
//   - Only a draft with at least one line item may be submitted
//   - Any of Pending, InProgress, Completed may change to any other
package order
