// Package request models a resident's collection request and the record
// written when the pickup is done.
//
// The package includes:
//   - CollectionRequest: the aggregate root and its state machine (Status)
//   - Details, Assignment: immutable value objects attached to a request
//   - Record: proof of collection, created once per completed request
//   - domain events raised on creation, assignment, start, completion and cancellation
//
// Key business rules:
//   - a request starts Pending and never returns to it
//   - completion is idempotent: the second call neither re-stamps collected_at
//     nor raises a second CompletedEvent
//   - coordinates, when given, must lie inside kernel.ServiceArea
//   - ratings are integers between 1 and 5
package request
