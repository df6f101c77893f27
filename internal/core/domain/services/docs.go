// Package services holds domain services that coordinate several
// aggregates without owning state:
//   - RequestDispatcher and AssignmentPolicy choose who collects a request
//   - NotificationFanout turns domain events into notifications
package services
