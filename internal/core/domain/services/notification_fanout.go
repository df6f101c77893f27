package services

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/notification"
	"wasteflow/internal/core/domain/model/request"
)

// AudienceNeeds tells the caller which user lists Plan needs for an event.
type AudienceNeeds struct {
	CompanyUsers bool
	Supervisors  bool
}

func (n AudienceNeeds) Any() bool {
	return n.CompanyUsers || n.Supervisors
}

// Audience holds the broadcast recipients looked up in the user directory.
type Audience struct {
	CompanyUsers []kernel.UUID
	Supervisors  []kernel.UUID
}

// FanoutPlan is the set of notifications produced for one event. Direct
// notifications are stored one by one, Broadcast in a single batch.
type FanoutPlan struct {
	Direct    []*notification.Notification
	Broadcast []*notification.Notification
}

func (p FanoutPlan) IsEmpty() bool {
	return len(p.Direct) == 0 && len(p.Broadcast) == 0
}

// NotificationFanout maps domain events to notifications:
//
//	request created    -> resident (collection_scheduled), company users (assignment)
//	request started    -> resident (collection_in_progress)
//	request completed  -> resident (collection_completed)
//	report created     -> resident, supervisors and company users (complaint_update)
//	report updated     -> resident (complaint_update)
//
// Other events produce nothing.
type NotificationFanout struct{}

func NewNotificationFanout() NotificationFanout {
	return NotificationFanout{}
}

func (f NotificationFanout) Needs(event kernel.DomainEvent) AudienceNeeds {
	switch event.(type) {
	case request.CreatedEvent:
		return AudienceNeeds{CompanyUsers: true}
	case complaint.CreatedEvent:
		return AudienceNeeds{CompanyUsers: true, Supervisors: true}
	default:
		return AudienceNeeds{}
	}
}

func (f NotificationFanout) Plan(event kernel.DomainEvent, audience Audience, at time.Time) (FanoutPlan, error) {
	var b planBuilder
	b.at = at

	switch e := event.(type) {
	case request.CreatedEvent:
		data := map[string]any{"request_id": e.RequestID.String(), "waste_type": string(e.WasteType)}
		b.direct(e.ResidentID, notification.CollectionScheduled, "Collection Request Received",
			fmt.Sprintf("Your %s waste collection request has been received.", e.WasteType), data)
		b.broadcast(audience.CompanyUsers, notification.Assignment, "New Collection Request",
			fmt.Sprintf("A new %s collection request is waiting at %s.", e.WasteType, e.Address), data)

	case request.StartedEvent:
		b.direct(e.ResidentID, notification.CollectionInProgress, "Collection In Progress",
			"The collection crew has started working on your request.",
			map[string]any{"request_id": e.RequestID.String()})

	case request.CompletedEvent:
		b.direct(e.ResidentID, notification.CollectionCompleted, "Collection Completed",
			fmt.Sprintf("Your waste was collected at %s.", e.CollectedAt.In(request.ServiceTimeZone).Format("15:04 on 2 Jan")),
			map[string]any{"request_id": e.RequestID.String()})

	case complaint.CreatedEvent:
		data := map[string]any{"report_id": e.ReportID.String(), "report_type": string(e.ReportType)}
		if e.ResidentID != nil {
			b.direct(*e.ResidentID, notification.ComplaintUpdate, "Report Received",
				"Your report has been received and will be reviewed.", data)
		}
		b.broadcast(union(audience.Supervisors, audience.CompanyUsers), notification.ComplaintUpdate,
			"New Waste Report",
			fmt.Sprintf("A new %s report with %s priority was filed.", humanize(string(e.ReportType)), e.Priority),
			data)

	case complaint.UpdatedEvent:
		if e.ResidentID != nil {
			msg := fmt.Sprintf("Your report is now %s.", e.Status)
			if e.Response != "" {
				msg += " " + e.Response
			}
			b.direct(*e.ResidentID, notification.ComplaintUpdate, "Report Updated", msg,
				map[string]any{"report_id": e.ReportID.String(), "status": e.Status.String()})
		}
	}

	return b.plan, b.err
}

type planBuilder struct {
	at   time.Time
	plan FanoutPlan
	err  error
}

func (b *planBuilder) direct(userID kernel.UUID, kind notification.Type, title, message string, data map[string]any) {
	if n := b.build(userID, kind, title, message, data); n != nil {
		b.plan.Direct = append(b.plan.Direct, n)
	}
}

func (b *planBuilder) broadcast(userIDs []kernel.UUID, kind notification.Type, title, message string, data map[string]any) {
	for _, id := range userIDs {
		if n := b.build(id, kind, title, message, data); n != nil {
			b.plan.Broadcast = append(b.plan.Broadcast, n)
		}
	}
}

func (b *planBuilder) build(userID kernel.UUID, kind notification.Type, title, message string,
	data map[string]any) *notification.Notification {
	if b.err != nil {
		return nil
	}
	n, err := notification.NewNotification(kernel.NewUUID(), userID, kind, title, message, maps.Clone(data), b.at)
	if err != nil {
		b.err = err
		return nil
	}
	return n
}

func union(lists ...[]kernel.UUID) []kernel.UUID {
	var out []kernel.UUID
	for _, l := range lists {
		for _, id := range l {
			if !slices.ContainsFunc(out, id.IsEqual) {
				out = append(out, id)
			}
		}
	}
	return out
}

func humanize(slug string) string {
	return strings.ReplaceAll(slug, "_", " ")
}
