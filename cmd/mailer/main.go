package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/app"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/config"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/notify"
)

// mailer consumes booking events and sends the confirmation mails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadWorker()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	mailer, err := notify.NewMailer(notify.MailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.From,
		Currency: cfg.Currency,
	})
	if err != nil {
		logger.Fatal("failed to init mailer", zap.Error(err))
	}

	consumer := notify.NewConsumer(notify.ConsumerConfig{
		URL:      cfg.AMQPURL,
		Exchange: cfg.AMQPExchange,
		Queue:    cfg.MailQueue,
		Bindings: []string{notify.RKBookingCreated},
		DLXName:  cfg.AMQPExchange + ".dlx",
		DLXQueue: cfg.MailQueue + ".dlq",
		Tag:      "mailer",
	}, logger.Named("consumer"))
	if err := consumer.Connect(); err != nil {
		logger.Fatal("failed to connect consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("mailer consuming", zap.String("queue", cfg.MailQueue))
	if err := consumer.Run(ctx, mailer.HandleDelivery); err != nil {
		logger.Error("consumer stopped", zap.Error(err))
	}
	logger.Info("mailer exited")
}
