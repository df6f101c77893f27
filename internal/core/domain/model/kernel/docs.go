// Package kernel holds the primitives shared by every aggregate of the
// waste collection workflow:
//   - UUID: identifier value object
//   - Location: a coordinate inside the serviced city, validated against ServiceArea
//   - DomainEvent, BaseEvent, EventRecorder: the domain event envelope and buffer
package kernel
