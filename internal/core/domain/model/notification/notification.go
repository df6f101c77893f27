// Package notification models the in-app messages delivered to users when
// requests and complaints change.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

type Type string

const (
	CollectionScheduled  Type = "collection_scheduled"
	CollectionInProgress Type = "collection_in_progress"
	CollectionCompleted  Type = "collection_completed"
	ComplaintUpdate      Type = "complaint_update"
	SystemAlert          Type = "system_alert"
	CompanyApproval      Type = "company_approval"
	Assignment           Type = "assignment"
)

func (t Type) Validate() error {
	switch t {
	case CollectionScheduled, CollectionInProgress, CollectionCompleted,
		ComplaintUpdate, SystemAlert, CompanyApproval, Assignment:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("notification_type", fmt.Errorf("%q is not a known type", string(t)))
}

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification")

type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	kind      Type
	title     string
	message   string
	data      map[string]any
	isRead    bool
	readAt    *time.Time
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	kind Type,
	title string,
	message string,
	data map[string]any,
	at time.Time,
) (*Notification, error) {
	n := &Notification{
		data:      data,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}
	if n.data == nil {
		n.data = map[string]any{}
	}

	if err := errors.Join(
		id.Validate(),
		n.setUserID(userID),
		n.setType(kind),
		n.setTitle(title),
	); err != nil {
		return nil, err
	}
	n.id = id
	n.message = message

	return n, nil
}

func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	kind Type,
	title string,
	message string,
	data map[string]any,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, kind, title, message, data, createdAt)
	if err != nil {
		return nil, err
	}
	n.isRead = isRead
	n.readAt = readAt
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID      { return n.id }
func (n *Notification) UserID() kernel.UUID  { return n.userID }
func (n *Notification) Type() Type           { return n.kind }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Data() map[string]any { return n.data }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// IsAddressedTo reports whether userID is the recipient.
func (n *Notification) IsAddressedTo(userID kernel.UUID) bool {
	return n.userID.IsEqual(userID)
}

// MarkRead flags the notification as read. It returns false, and keeps the
// original read time, when it was already read.
func (n *Notification) MarkRead(at time.Time) bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	n.readAt = &at
	return true
}

func (n *Notification) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	n.userID = id
	return nil
}

func (n *Notification) setType(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}
