// Package domain contains the core data model for curriculum building:
// goal analyses, week specifications, generated weekly content, and the
// final curriculum plan. Types in this package carry their own validation
// and have no dependencies on transport, storage, or generator concerns.
package domain
