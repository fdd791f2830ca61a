// Package services provides domain services that coordinate more than one
// aggregate of the order composition model.
//
// The package includes:
//   - LineItemBuilder: turns a product selection and a raw quantity input into a
//     validated line item, using the catalog loaded for the editing session
//
// Validation happens locally; nothing in this package talks to the backend.
package services
