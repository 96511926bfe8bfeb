package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic and persists one activity_logs
// row per message. It runs outside the request path, so persistence failures
// are retried via Nack instead of surfacing to any caller.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // malformed messages are never retriable
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.ActivityLog{
		Id:        uuid.New(),
		EventType: payload.EventType,
		PageId:    payload.PageId,
		UserId:    payload.UserId,
		Detail:    payload.Detail,
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to persist activity log %s: %v", payload.EventType, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
