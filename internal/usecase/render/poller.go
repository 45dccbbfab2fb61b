package render

import (
	"context"
	"time"

	"placid-connector/internal/domain"
	"placid-connector/internal/placid"
)

// createAndAwait submits a creation request and polls the job until it
// reaches a terminal state. A creation response without an id is returned
// directly: the API completed the job synchronously.
//
// The first poll happens immediately; every later attempt waits the fixed
// per-kind interval first. No backoff, no jitter.
func (u *Usecase) createAndAwait(ctx context.Context, kind domain.ResourceKind, body any) (placid.Job, error) {
	created, err := u.api.Create(ctx, kind, body)
	if err != nil {
		return nil, err
	}

	id := created.ID()
	if id == "" {
		return created, nil
	}

	policy := domain.PollPolicyFor(kind)
	u.logger.Debug().
		Str("resource", string(kind)).
		Str("job_id", id).
		Int("max_attempts", policy.MaxAttempts).
		Msg("Polling job status")

	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := u.sleep(ctx, policy.Interval); err != nil {
				return nil, err
			}
		}

		polled, err := u.api.Get(ctx, kind, id)
		if err != nil {
			return nil, err
		}

		switch domain.JobStatus(polled.Status()) {
		case domain.StatusFinished:
			return polled, nil
		case domain.StatusError:
			return nil, &JobFailedError{Kind: kind, Message: polled.ErrorMessage()}
		}
		// "queued" and any other pending status keep the loop going.
	}

	// Reporting the creation response's status here (not the last poll's)
	// matches the established behavior.
	return nil, &JobTimeoutError{
		Kind:       kind,
		Attempts:   policy.MaxAttempts,
		LastStatus: created.Status(),
	}
}

func waitInterval(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
