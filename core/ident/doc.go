// Package ident generates the fixed-width identifiers that link manifest
// sections together.
//
// Identifiers only have to be collision-free against the document currently
// being mutated, not globally unique, so the generator is seeded with the
// document's identifier set and records everything it issues during a run.
package ident
