package request

import (
	"time"

	"wasteflow/internal/core/domain/model/kernel"
)

const (
	CreatedEventName   = "collection_request.created"
	AssignedEventName  = "collection_request.assigned"
	StartedEventName   = "collection_request.started"
	CompletedEventName = "collection_request.completed"
	CancelledEventName = "collection_request.cancelled"
)

type CreatedEvent struct {
	kernel.BaseEvent
	RequestID  kernel.UUID
	ResidentID kernel.UUID
	ZoneID     *kernel.UUID
	WasteType  WasteType
	Address    string
}

type AssignedEvent struct {
	kernel.BaseEvent
	RequestID        kernel.UUID
	ResidentID       kernel.UUID
	CompanyID        kernel.UUID
	VehicleID        *kernel.UUID
	DriverID         *kernel.UUID
	EstimatedArrival time.Time
}

type StartedEvent struct {
	kernel.BaseEvent
	RequestID  kernel.UUID
	ResidentID kernel.UUID
}

type CompletedEvent struct {
	kernel.BaseEvent
	RequestID   kernel.UUID
	ResidentID  kernel.UUID
	CollectedAt time.Time
}

type CancelledEvent struct {
	kernel.BaseEvent
	RequestID  kernel.UUID
	ResidentID kernel.UUID
}
