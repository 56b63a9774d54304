package notifier

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const messageTypeAppointmentBooked = "appointment.booked"

type appointmentNotifier struct {
	Channel Publisher
	Queue   string
	Log     *zap.Logger
}

// NewAppointmentNotifier opens a channel on conn and declares the durable notification queue.
func NewAppointmentNotifier(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.AppointmentNotifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return NewAppointmentNotifierWithPublisher(channel, queue, logger), nil
}

func NewAppointmentNotifierWithPublisher(publisher Publisher, queue string, logger *zap.Logger) contracts.AppointmentNotifier {
	return &appointmentNotifier{
		Channel: publisher,
		Queue:   queue,
		Log:     logger,
	}
}

func (n *appointmentNotifier) PublishAppointmentBooked(ctx context.Context, notification *requests.AppointmentNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    notification.AppointmentID,
		Type:         messageTypeAppointmentBooked,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
			"request_id":       requestID,
		},
	}

	err = n.Channel.PublishWithContext(ctx, "", n.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, n.Queue)
	}

	n.Log.Info("appointmentNotifier.PublishAppointmentBooked published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, n.Queue),
		zap.String(constvars.LoggingAppointmentIDKey, notification.AppointmentID),
	)
	return nil
}
