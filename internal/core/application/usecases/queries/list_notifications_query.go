package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

const (
	DefaultNotificationsLimit = 50
	MaxNotificationsLimit     = 100
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

type ListNotificationsQuery struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	unreadOnly bool
	limit      int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery uses DefaultNotificationsLimit when limit is zero.
func NewListNotificationsQuery(userID kernel.UUID, unreadOnly bool, limit int) (ListNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	if limit == 0 {
		limit = DefaultNotificationsLimit
	}
	if limit < 1 || limit > MaxNotificationsLimit {
		return ListNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationsLimit)
	}
	return ListNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}
