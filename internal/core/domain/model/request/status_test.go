package request_test

import (
	"testing"

	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse every known slug", func(t *testing.T) {
		for slug, expected := range map[string]request.Status{
			"pending":     request.Pending,
			"assigned":    request.Assigned,
			"in_progress": request.InProgress,
			"completed":   request.Completed,
			"cancelled":   request.Cancelled,
		} {
			got, err := request.ParseStatus(slug)
			require.NoError(t, err, slug)
			assert.Equal(t, expected, got)
			assert.Equal(t, slug, got.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, slug := range []string{"", "unknown", "done", "Completed"} {
			_, err := request.ParseStatus(slug)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, slug)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	assert.Error(t, request.Unknown.Validate())
	assert.Error(t, request.Status(42).Validate())
	assert.NoError(t, request.InProgress.Validate())
	assert.Equal(t, "In Progress", request.InProgress.Display())
	assert.Equal(t, "unknown", request.Status(42).String())
}

func TestStatus_TransitionTable(t *testing.T) {
	type move func(request.Status) (request.Status, error)
	moves := map[string]move{
		"assign":   request.Status.Assign,
		"start":    request.Status.Start,
		"complete": request.Status.Complete,
		"cancel":   request.Status.Cancel,
	}
	// expected target per (from, move); missing entries are rejected.
	allowed := map[request.Status]map[string]request.Status{
		request.Pending: {
			"assign": request.Assigned,
			"cancel": request.Cancelled,
		},
		request.Assigned: {
			"assign":   request.Assigned,
			"start":    request.InProgress,
			"complete": request.Completed,
			"cancel":   request.Cancelled,
		},
		request.InProgress: {
			"start":    request.InProgress,
			"complete": request.Completed,
			"cancel":   request.Cancelled,
		},
		request.Completed: {
			"complete": request.Completed,
		},
		request.Cancelled: {
			"cancel": request.Cancelled,
		},
	}

	for from, targets := range allowed {
		for name, fn := range moves {
			t.Run(from.String()+"_"+name, func(t *testing.T) {
				got, err := fn(from)

				if want, ok := targets[name]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, got)
					return
				}
				require.ErrorIs(t, err, errs.ErrTransitionRejected)
				assert.Equal(t, request.Unknown, got)
			})
		}
	}
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, request.Assigned.IsActive())
	assert.True(t, request.InProgress.IsActive())
	assert.False(t, request.Pending.IsActive())
	assert.False(t, request.Completed.IsActive())
	assert.True(t, request.Completed.IsTerminal())
	assert.True(t, request.Cancelled.IsTerminal())
}
