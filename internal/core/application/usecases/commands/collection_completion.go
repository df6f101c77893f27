package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
)

type completionUoW interface {
	RequestRepoFactory
	RecordRepoFactory
}

// completeRequest completes req and makes sure its collection record exists.
// Completing an already completed request only fills in a missing record.
// The unique key on the record's request id settles concurrent completions.
func completeRequest(ctx context.Context, uow completionUoW, req *request.CollectionRequest, at time.Time) error {
	changed, err := req.Complete(at)
	if err != nil {
		return err
	}
	if changed {
		if err := uow.CollectionRequestRepository().Update(ctx, req); err != nil {
			return err
		}
	}

	record, err := request.NewRecord(kernel.NewUUID(), req, at)
	if err != nil {
		return err
	}
	_, err = uow.CollectionRecordRepository().AddIfAbsent(ctx, record)
	return err
}
