package push_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/dto"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	dispatcher               Dispatcher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatcher Dispatcher, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "push.requested"))

	return &Handler{
		dispatcher:               dispatcher,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing доставляет один push-запрос.
// true означает "прервать ConsumeClaim": сообщение не помечается и будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var req dto.PushRequest
	if err := json.Unmarshal(message.Value, &req); err != nil {
		h.log.Error("bad push request message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", req.Data.OrderID),
		logger.NewField("devices", len(req.DeviceIDs)),
		logger.NewField("offset", message.Offset),
	)

	err := h.dispatcher.Send(ctx, dto.ToPush(req))
	if err != nil {
		if errors.Is(err, context.Canceled) && sess.Context().Err() != nil {
			msgLog.Warn("session closed, message will be reprocessed", logger.NewField("error", err))
			return true
		}
		// push best-effort: после ретраев гейтвея сообщение отбрасывается
		msgLog.Warn("push delivery failed, dropping message", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Debug("push delivered")
	sess.MarkMessage(message, "")
	return false
}
