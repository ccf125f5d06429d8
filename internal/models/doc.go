// Package models defines the core domain models for Cheesery.
//
// There is a single entity, Cheese. Records are created and updated outside
// the HTTP surface (see cmd/seed); the API only reads them.
//
// Models carry no JSON tags on purpose: the external representation is a
// projection owned by the presenter package, which decides which fields are
// visible per endpoint. Store-managed timestamps in particular must never
// leak into a response, and keeping serialization out of the model makes
// that the presenter's single responsibility.
package models
