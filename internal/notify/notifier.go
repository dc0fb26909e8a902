package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers booking events to the user's notification channel.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// LogNotifier writes events to the log. It stands in when no broker is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, ev Event) error {
	n.logger.Info("booking notification",
		zap.String("booking_id", ev.BookingID),
		zap.String("recipient", ev.Recipient),
		zap.String("auditorium", ev.ResourceName),
		zap.String("date", ev.Date),
		zap.String("window", ev.StartTime+"-"+ev.EndTime),
		zap.String("total_cost", ev.TotalCost),
		zap.String("status", ev.Status),
	)
	return nil
}
