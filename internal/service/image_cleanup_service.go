package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// imageCleanupService deletes hosted pet images after the pet row is gone. The image host
// exposes a per-image delete URL that only needs a GET.
type imageCleanupService struct {
	subscriber   message.Subscriber
	topicName    string
	httpClient   *http.Client
	requireHTTPS bool
	logger       logger.ILogger
}

func NewImageCleanupService(
	subscriber message.Subscriber,
	topicName string,
	httpClient *http.Client,
	requireHTTPS bool,
	logger logger.ILogger,
) IConsumerService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &imageCleanupService{
		subscriber:   subscriber,
		topicName:    topicName,
		httpClient:   httpClient,
		requireHTTPS: requireHTTPS,
		logger:       logger,
	}
}

func (cs *imageCleanupService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *imageCleanupService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PetImageCleanupMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("IMAGE_CLEANUP", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // never becomes valid
		return
	}

	if payload.ImageDeleteURL == "" {
		msg.Ack()
		return
	}

	if err := cs.deleteImage(ctx, payload.ImageDeleteURL); err != nil {
		// The pet is already gone; an orphaned image is not worth blocking the queue for.
		cs.logger.Warn("IMAGE_CLEANUP", "Failed to delete pet image", map[string]interface{}{
			"pet_id": payload.PetId.String(),
			"error":  err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("IMAGE_CLEANUP", "Pet image deleted", map[string]interface{}{"pet_id": payload.PetId.String()})
	msg.Ack()
}

func (cs *imageCleanupService) deleteImage(ctx context.Context, deleteURL string) error {
	if cs.requireHTTPS && !strings.HasPrefix(deleteURL, "https://") {
		return fmt.Errorf("refusing non-https delete url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deleteURL, nil)
	if err != nil {
		return err
	}
	resp, err := cs.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("image host returned %d", resp.StatusCode)
	}
	return nil
}
