package repository

import (
	"context"
	"time"

	"staybook/internal/domain/webhook"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

type WebhookEventQueries interface {
	InsertProcessedWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertProcessedWebhookEventParams) (int64, error)
	SetWebhookEventOutcome(ctx context.Context, db sqlc.DBTX, arg sqlc.SetWebhookEventOutcomeParams) error
}

type WebhookEventRepository struct {
	queries WebhookEventQueries
}

func NewWebhookEventRepository(queries WebhookEventQueries) *WebhookEventRepository {
	return &WebhookEventRepository{queries: queries}
}

func (r *WebhookEventRepository) Record(ctx context.Context, tx sqlc.DBTX, eventID string, kind webhook.Kind, receivedAt time.Time) (bool, error) {
	n, err := r.queries.InsertProcessedWebhookEvent(ctx, tx, sqlc.InsertProcessedWebhookEventParams{
		EventID:    eventID,
		Kind:       kind.String(),
		ReceivedAt: pgconv.TimeToPgtype(receivedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return n == 1, nil
}

func (r *WebhookEventRepository) SetOutcome(ctx context.Context, tx sqlc.DBTX, eventID string, outcome webhook.Outcome, processedAt time.Time) error {
	err := r.queries.SetWebhookEventOutcome(ctx, tx, sqlc.SetWebhookEventOutcomeParams{
		EventID:     eventID,
		Outcome:     pgconv.StringToPgtype(outcome.String()),
		ProcessedAt: pgconv.TimeToPgtype(processedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set webhook event outcome", err)
	}
	return nil
}
