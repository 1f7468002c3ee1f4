// Package cleaning provides the domain model for cleaning jobs, the sole
// resource this service manages.
//
// The package includes:
//   - Cleaning: the aggregate holding a job's identity and attributes
//   - Type: a closed, string-backed enumeration of cleaning kinds
//   - Patch: a partial update with exclude-unset semantics
//
// Key business rules:
//   - A stored cleaning job always has a non-empty name, a price, and a
//     valid cleaning type (defaulting to spot_clean at creation)
//   - The identifier is assigned exactly once, by the database, at creation
//   - A patch merge that would null out a required attribute is rejected in
//     memory, before any write is issued
//
// The package follows Domain-Driven Design principles, providing
// encapsulation and validation to ensure business rules are enforced.
package cleaning
