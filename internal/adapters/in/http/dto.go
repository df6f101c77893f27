package http

import (
	"errors"
	"time"

	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type NewCollectionRequest struct {
	WasteType           string             `json:"waste_type"`
	QuantityBags        *int               `json:"quantity_bags,omitempty"`
	EstimatedWeightKg   *decimal.Decimal   `json:"estimated_weight_kg,omitempty"`
	PreferredDate       openapi_types.Date `json:"preferred_date"`
	PreferredTime       string             `json:"preferred_time"`
	Address             string             `json:"address"`
	Latitude            *float64           `json:"latitude,omitempty"`
	Longitude           *float64           `json:"longitude,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
}

// CollectionRequestUpdate is a partial edit. Latitude and longitude travel
// together.
type CollectionRequestUpdate struct {
	WasteType           *string             `json:"waste_type,omitempty"`
	QuantityBags        *int                `json:"quantity_bags,omitempty"`
	EstimatedWeightKg   *decimal.Decimal    `json:"estimated_weight_kg,omitempty"`
	PreferredDate       *openapi_types.Date `json:"preferred_date,omitempty"`
	PreferredTime       *string             `json:"preferred_time,omitempty"`
	Address             *string             `json:"address,omitempty"`
	Latitude            *float64            `json:"latitude,omitempty"`
	Longitude           *float64            `json:"longitude,omitempty"`
	SpecialInstructions *string             `json:"special_instructions,omitempty"`
}

func (u CollectionRequestUpdate) toChange() (request.DetailsChange, error) {
	change := request.DetailsChange{
		QuantityBags:        u.QuantityBags,
		EstimatedWeightKg:   u.EstimatedWeightKg,
		Address:             u.Address,
		SpecialInstructions: u.SpecialInstructions,
	}

	var wasteErr, windowErr error
	if u.WasteType != nil {
		var wt request.WasteType
		wt, wasteErr = request.ParseWasteType(*u.WasteType)
		change.WasteType = &wt
	}
	if u.PreferredTime != nil {
		var w request.TimeWindow
		w, windowErr = request.ParseTimeWindow(*u.PreferredTime)
		change.PreferredTime = &w
	}
	if u.PreferredDate != nil {
		change.PreferredDate = &u.PreferredDate.Time
	}
	location, locationErr := kernel.NewOptionalLocation(u.Latitude, u.Longitude)
	if err := errors.Join(wasteErr, windowErr, locationErr); err != nil {
		return request.DetailsChange{}, err
	}
	change.Location = location
	return change, nil
}

type CollectionRequest struct {
	ID                  openapi_types.UUID  `json:"id"`
	ResidentID          openapi_types.UUID  `json:"resident_id"`
	ZoneID              *openapi_types.UUID `json:"zone_id,omitempty"`
	WasteType           string              `json:"waste_type"`
	QuantityBags        int                 `json:"quantity_bags"`
	EstimatedWeightKg   *decimal.Decimal    `json:"estimated_weight_kg,omitempty"`
	PreferredDate       openapi_types.Date  `json:"preferred_date"`
	PreferredTime       string              `json:"preferred_time"`
	Address             string              `json:"address"`
	Latitude            *float64            `json:"latitude,omitempty"`
	Longitude           *float64            `json:"longitude,omitempty"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	Status              string              `json:"status"`
	StatusDisplay       string              `json:"status_display"`
	AssignedCompanyID   *openapi_types.UUID `json:"assigned_company_id,omitempty"`
	AssignedVehicleID   *openapi_types.UUID `json:"assigned_vehicle_id,omitempty"`
	AssignedDriverID    *openapi_types.UUID `json:"assigned_driver_id,omitempty"`
	EstimatedArrival    *time.Time          `json:"estimated_arrival,omitempty"`
	CollectedAt         *time.Time          `json:"collected_at,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

type CollectionRecord struct {
	ID                openapi_types.UUID  `json:"id"`
	VehicleID         *openapi_types.UUID `json:"vehicle_id,omitempty"`
	DriverID          *openapi_types.UUID `json:"driver_id,omitempty"`
	CollectedAt       time.Time           `json:"collected_at"`
	ActualWeightKg    *decimal.Decimal    `json:"actual_weight_kg,omitempty"`
	PhotoProofURL     string              `json:"photo_proof_url,omitempty"`
	ResidentSignature string              `json:"resident_signature,omitempty"`
	DriverNotes       string              `json:"driver_notes,omitempty"`
	Rating            *int                `json:"rating,omitempty"`
	Feedback          string              `json:"feedback,omitempty"`
}

type CollectionRequestDetail struct {
	CollectionRequest
	Record *CollectionRecord `json:"record,omitempty"`
}

type Tracking struct {
	Status           string     `json:"status"`
	StatusDisplay    string     `json:"status_display"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	CollectedAt      *time.Time `json:"collected_at,omitempty"`
	VehiclePlate     string     `json:"vehicle_plate,omitempty"`
	VehicleLatitude  *float64   `json:"vehicle_latitude,omitempty"`
	VehicleLongitude *float64   `json:"vehicle_longitude,omitempty"`
	VehicleSeenAt    *time.Time `json:"vehicle_seen_at,omitempty"`
}

type Rating struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

type NewWasteReport struct {
	ReportType      string   `json:"report_type"`
	Priority        string   `json:"priority,omitempty"`
	Description     string   `json:"description"`
	LocationAddress string   `json:"location_address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

type WasteReport struct {
	ID                openapi_types.UUID  `json:"id"`
	ReportType        string              `json:"report_type"`
	Priority          string              `json:"priority"`
	Description       string              `json:"description"`
	LocationAddress   string              `json:"location_address"`
	Latitude          *float64            `json:"latitude,omitempty"`
	Longitude         *float64            `json:"longitude,omitempty"`
	Status            string              `json:"status"`
	AssignedCompanyID *openapi_types.UUID `json:"assigned_company_id,omitempty"`
	Response          string              `json:"response,omitempty"`
	ResolvedAt        *time.Time          `json:"resolved_at,omitempty"`
	ReportedAt        time.Time           `json:"reported_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type WasteReportUpdate struct {
	Status            *string             `json:"status,omitempty"`
	Response          *string             `json:"response,omitempty"`
	AssignedCompanyID *openapi_types.UUID `json:"assigned_company_id,omitempty"`
}

type Assignment struct {
	VehicleID *openapi_types.UUID `json:"vehicle_id,omitempty"`
	DriverID  *openapi_types.UUID `json:"driver_id,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type NewRoute struct {
	Name               string              `json:"name"`
	ZoneID             *openapi_types.UUID `json:"zone_id,omitempty"`
	VehicleID          *openapi_types.UUID `json:"vehicle_id,omitempty"`
	DriverID           *openapi_types.UUID `json:"driver_id,omitempty"`
	ScheduledDate      openapi_types.Date  `json:"scheduled_date"`
	ScheduledStartTime time.Time           `json:"scheduled_start_time"`
	Stops              []NewStop           `json:"stops"`
}

type NewStop struct {
	SequenceNumber int                 `json:"sequence_number"`
	Address        string              `json:"address"`
	Latitude       float64             `json:"latitude"`
	Longitude      float64             `json:"longitude"`
	ResidentID     *openapi_types.UUID `json:"resident_id,omitempty"`
	RequestID      *openapi_types.UUID `json:"request_id,omitempty"`
}

type Route struct {
	ID                 openapi_types.UUID  `json:"id"`
	Name               string              `json:"name"`
	CompanyID          openapi_types.UUID  `json:"company_id"`
	VehicleID          *openapi_types.UUID `json:"vehicle_id,omitempty"`
	DriverID           *openapi_types.UUID `json:"driver_id,omitempty"`
	Status             string              `json:"status"`
	ScheduledDate      openapi_types.Date  `json:"scheduled_date"`
	ScheduledStartTime time.Time           `json:"scheduled_start_time"`
	ActualStartTime    *time.Time          `json:"actual_start_time,omitempty"`
	ActualEndTime      *time.Time          `json:"actual_end_time,omitempty"`
	TotalStops         int                 `json:"total_stops"`
	CompletedStops     int                 `json:"completed_stops"`
	TotalDistanceKm    float64             `json:"total_distance_km"`
	Stops              []Stop              `json:"stops"`
}

type Stop struct {
	ID             openapi_types.UUID  `json:"id"`
	RouteID        openapi_types.UUID  `json:"route_id"`
	SequenceNumber int                 `json:"sequence_number"`
	Address        string              `json:"address"`
	Latitude       float64             `json:"latitude"`
	Longitude      float64             `json:"longitude"`
	ResidentID     *openapi_types.UUID `json:"resident_id,omitempty"`
	RequestID      *openapi_types.UUID `json:"request_id,omitempty"`
	Status         string              `json:"status"`
	ArrivalTime    *time.Time          `json:"arrival_time,omitempty"`
	DepartureTime  *time.Time          `json:"departure_time,omitempty"`
	Notes          string              `json:"notes,omitempty"`
}

type SkipStop struct {
	Notes string `json:"notes,omitempty"`
}

type CollectionProof struct {
	ActualWeightKg    *decimal.Decimal `json:"actual_weight_kg,omitempty"`
	PhotoProofURL     string           `json:"photo_proof_url,omitempty"`
	ResidentSignature string           `json:"resident_signature,omitempty"`
	DriverNotes       string           `json:"driver_notes,omitempty"`
}

type Notification struct {
	ID        openapi_types.UUID `json:"id"`
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Data      map[string]any     `json:"data"`
	IsRead    bool               `json:"is_read"`
	ReadAt    *time.Time         `json:"read_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type NotificationPage struct {
	Items       []Notification `json:"items"`
	UnreadCount int64          `json:"unread_count"`
}

type MarkedRead struct {
	Updated int64 `json:"updated"`
}

func toAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func fromAPIUUID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := kernel.UUIDFromGoogle(*id)
	return &v
}

func toCollectionRequest(v queries.CollectionRequestView) CollectionRequest {
	return CollectionRequest{
		ID:                  v.ID.Bytes(),
		ResidentID:          v.ResidentID.Bytes(),
		ZoneID:              toAPIUUID(v.ZoneID),
		WasteType:           v.WasteType,
		QuantityBags:        v.QuantityBags,
		EstimatedWeightKg:   v.EstimatedWeightKg,
		PreferredDate:       openapi_types.Date{Time: v.PreferredDate},
		PreferredTime:       v.PreferredTime,
		Address:             v.Address,
		Latitude:            v.Latitude,
		Longitude:           v.Longitude,
		SpecialInstructions: v.SpecialInstructions,
		Status:              v.Status,
		StatusDisplay:       v.StatusDisplay,
		AssignedCompanyID:   toAPIUUID(v.AssignedCompanyID),
		AssignedVehicleID:   toAPIUUID(v.AssignedVehicleID),
		AssignedDriverID:    toAPIUUID(v.AssignedDriverID),
		EstimatedArrival:    v.EstimatedArrival,
		CollectedAt:         v.CollectedAt,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func toCollectionRequests(views []queries.CollectionRequestView) []CollectionRequest {
	out := make([]CollectionRequest, 0, len(views))
	for _, v := range views {
		out = append(out, toCollectionRequest(v))
	}
	return out
}

func toCollectionRequestDetail(d queries.CollectionRequestDetail) CollectionRequestDetail {
	out := CollectionRequestDetail{CollectionRequest: toCollectionRequest(d.Request)}
	if r := d.Record; r != nil {
		out.Record = &CollectionRecord{
			ID:                r.ID.Bytes(),
			VehicleID:         toAPIUUID(r.VehicleID),
			DriverID:          toAPIUUID(r.DriverID),
			CollectedAt:       r.CollectedAt,
			ActualWeightKg:    r.ActualWeightKg,
			PhotoProofURL:     r.PhotoProofURL,
			ResidentSignature: r.ResidentSignature,
			DriverNotes:       r.DriverNotes,
			Rating:            r.Rating,
			Feedback:          r.Feedback,
		}
	}
	return out
}

func toStop(s queries.StopView) Stop {
	return Stop{
		ID:             s.ID.Bytes(),
		RouteID:        s.RouteID.Bytes(),
		SequenceNumber: s.SequenceNumber,
		Address:        s.Address,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		ResidentID:     toAPIUUID(s.ResidentID),
		RequestID:      toAPIUUID(s.RequestID),
		Status:         s.Status,
		ArrivalTime:    s.ArrivalTime,
		DepartureTime:  s.DepartureTime,
		Notes:          s.Notes,
	}
}

func toStops(views []queries.StopView) []Stop {
	out := make([]Stop, 0, len(views))
	for _, s := range views {
		out = append(out, toStop(s))
	}
	return out
}

func toRoute(v queries.RouteView) Route {
	return Route{
		ID:                 v.ID.Bytes(),
		Name:               v.Name,
		CompanyID:          v.CompanyID.Bytes(),
		VehicleID:          toAPIUUID(v.VehicleID),
		DriverID:           toAPIUUID(v.DriverID),
		Status:             v.Status,
		ScheduledDate:      openapi_types.Date{Time: v.ScheduledDate},
		ScheduledStartTime: v.ScheduledStartTime,
		ActualStartTime:    v.ActualStartTime,
		ActualEndTime:      v.ActualEndTime,
		TotalStops:         v.TotalStops,
		CompletedStops:     v.CompletedStops,
		TotalDistanceKm:    v.TotalDistanceKm,
		Stops:              toStops(v.Stops),
	}
}

func toWasteReport(v queries.WasteReportView) WasteReport {
	return WasteReport{
		ID:                v.ID.Bytes(),
		ReportType:        v.ReportType,
		Priority:          v.Priority,
		Description:       v.Description,
		LocationAddress:   v.LocationAddress,
		Latitude:          v.Latitude,
		Longitude:         v.Longitude,
		Status:            v.Status,
		AssignedCompanyID: toAPIUUID(v.AssignedCompanyID),
		Response:          v.Response,
		ResolvedAt:        v.ResolvedAt,
		ReportedAt:        v.ReportedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toNotificationPage(page queries.NotificationsPage) NotificationPage {
	items := make([]Notification, 0, len(page.Items))
	for _, n := range page.Items {
		items = append(items, Notification{
			ID:        n.ID.Bytes(),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return NotificationPage{Items: items, UnreadCount: page.UnreadCount}
}
