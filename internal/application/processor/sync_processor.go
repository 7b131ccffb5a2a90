package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"weather-watchlist/internal/domain/model"
	"weather-watchlist/internal/domain/usecase/weather"
	"weather-watchlist/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

// SyncProcessor consumes the sync queue, one location per message
type SyncProcessor struct {
	weatherUseCase weather.UseCase
}

func NewSyncProcessor(weatherUseCase weather.UseCase) *SyncProcessor {
	return &SyncProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. A message for a location deleted since it was
// queued is acknowledged; any other failure leaves it on the queue for redelivery.
func (p *SyncProcessor) HandleMessage(ctx context.Context, msg types.Message) error {
	if msg.Body == nil {
		return errors.New("received message without body")
	}

	var message model.SyncMessage
	if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
		return fmt.Errorf("failed to unmarshal sync message: %w", err)
	}
	if message.LocationID <= 0 {
		return fmt.Errorf("sync message without location id: %s", *msg.Body)
	}

	_, err := p.weatherUseCase.SyncLocation(ctx, message.LocationID)
	if errors.Is(err, model.ErrLocationNotFound) {
		log.Warn("Skipping sync of removed location",
			zap.Int64("location_id", message.LocationID),
			zap.String("request_id", message.RequestID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to sync location %d: %w", message.LocationID, err)
	}

	log.Debug("Processed sync message",
		zap.Int64("location_id", message.LocationID),
		zap.String("request_id", message.RequestID))
	return nil
}
