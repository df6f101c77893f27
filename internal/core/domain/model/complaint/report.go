// Package complaint models waste reports filed by residents and handled by
// supervisors and companies.
package complaint

import (
	"errors"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

const (
	CreatedEventName = "waste_report.created"
	UpdatedEventName = "waste_report.updated"
)

var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport")

type CreatedEvent struct {
	kernel.BaseEvent
	ReportID   kernel.UUID
	ResidentID *kernel.UUID
	ReportType ReportType
	Priority   Priority
}

type UpdatedEvent struct {
	kernel.BaseEvent
	ReportID   kernel.UUID
	ResidentID *kernel.UUID
	Status     Status
	Response   string
}

// Update describes a partial change. Nil fields are left as they are.
type Update struct {
	Status            *Status
	Response          *string
	AssignedCompanyID *kernel.UUID
}

// Report is a resident complaint. residentID becomes nil when the resident
// account is removed; the report itself is kept.
type Report struct {
	id                kernel.UUID
	residentID        *kernel.UUID
	reportType        ReportType
	priority          Priority
	description       string
	address           string
	location          *kernel.Location
	status            Status
	assignedCompanyID *kernel.UUID
	response          string
	resolvedAt        *time.Time
	reportedAt        time.Time
	updatedAt         time.Time

	events kernel.EventRecorder
	guard  guard.ConstructorGuard
}

func NewReport(
	id kernel.UUID,
	residentID kernel.UUID,
	reportType ReportType,
	priority Priority,
	description string,
	address string,
	location *kernel.Location,
	at time.Time,
) (*Report, error) {
	if priority == "" {
		priority = Medium
	}

	r := &Report{
		residentID: &residentID,
		status:     Open,
		location:   location,
		reportedAt: at,
		updatedAt:  at,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		residentID.Validate(),
		r.setReportType(reportType),
		r.setPriority(priority),
		r.setDescription(description),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}
	r.id = id

	r.events.Raise(CreatedEvent{
		BaseEvent:  kernel.NewBaseEvent(CreatedEventName, at),
		ReportID:   r.id,
		ResidentID: r.residentID,
		ReportType: r.reportType,
		Priority:   r.priority,
	})

	return r, nil
}

func RestoreReport(
	id kernel.UUID,
	residentID *kernel.UUID,
	reportType ReportType,
	priority Priority,
	description string,
	address string,
	location *kernel.Location,
	status Status,
	assignedCompanyID *kernel.UUID,
	response string,
	resolvedAt *time.Time,
	reportedAt time.Time,
	updatedAt time.Time,
) (*Report, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &Report{
		id:                id,
		residentID:        residentID,
		reportType:        reportType,
		priority:          priority,
		description:       description,
		address:           address,
		location:          location,
		status:            status,
		assignedCompanyID: assignedCompanyID,
		response:          response,
		resolvedAt:        resolvedAt,
		reportedAt:        reportedAt,
		updatedAt:         updatedAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (r *Report) Validate() error {
	if r == nil {
		return ErrReportIsNotConstructed
	}
	return r.guard.Validate(ErrReportIsNotConstructed)
}

func (r *Report) ID() kernel.UUID                 { return r.id }
func (r *Report) ResidentID() *kernel.UUID        { return r.residentID }
func (r *Report) ReportType() ReportType          { return r.reportType }
func (r *Report) Priority() Priority              { return r.priority }
func (r *Report) Description() string             { return r.description }
func (r *Report) Address() string                 { return r.address }
func (r *Report) Location() *kernel.Location      { return r.location }
func (r *Report) Status() Status                  { return r.status }
func (r *Report) AssignedCompanyID() *kernel.UUID { return r.assignedCompanyID }
func (r *Report) Response() string                { return r.response }
func (r *Report) ResolvedAt() *time.Time          { return r.resolvedAt }
func (r *Report) ReportedAt() time.Time           { return r.reportedAt }
func (r *Report) UpdatedAt() time.Time            { return r.updatedAt }

func (r *Report) DomainEvents() []kernel.DomainEvent {
	return r.events.DomainEvents()
}

func (r *Report) ClearDomainEvents() {
	r.events.ClearDomainEvents()
}

// Apply changes status, response and assigned company in one step and
// raises UpdatedEvent. resolvedAt is stamped the first time the report
// reaches Resolved.
func (r *Report) Apply(u Update, at time.Time) error {
	if u.Status == nil && u.Response == nil && u.AssignedCompanyID == nil {
		return errs.NewValueIsRequiredError("status, response or assigned_company_id")
	}

	newStatus := r.status
	if u.Status != nil {
		var err error
		if newStatus, err = r.status.TransitionTo(*u.Status); err != nil {
			return err
		}
	}
	if u.AssignedCompanyID != nil {
		if err := u.AssignedCompanyID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("assigned_company_id", err)
		}
		r.assignedCompanyID = u.AssignedCompanyID
	}
	if u.Response != nil {
		r.response = strings.TrimSpace(*u.Response)
	}
	if newStatus == Resolved && r.resolvedAt == nil {
		r.resolvedAt = &at
	}
	r.status = newStatus
	r.updatedAt = at

	r.events.Raise(UpdatedEvent{
		BaseEvent:  kernel.NewBaseEvent(UpdatedEventName, at),
		ReportID:   r.id,
		ResidentID: r.residentID,
		Status:     r.status,
		Response:   r.response,
	})
	return nil
}

func (r *Report) setReportType(t ReportType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.reportType = t
	return nil
}

func (r *Report) setPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.priority = p
	return nil
}

func (r *Report) setDescription(d string) error {
	d = strings.TrimSpace(d)
	if d == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = d
	return nil
}

func (r *Report) setAddress(a string) error {
	a = strings.TrimSpace(a)
	if a == "" {
		return errs.NewValueIsRequiredError("location_address")
	}
	r.address = a
	return nil
}
