package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	swish "github.com/jlundholm/swish-go"
	"github.com/jlundholm/swish-go/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting swish demo",
		"merchant_number", cfg.Client.MerchantNumber,
		"log_level", cfg.Logger.Level,
	)

	client, err := swish.NewClient(swish.Config{
		MerchantNumber: cfg.Client.MerchantNumber,
		BaseURL:        cfg.Client.BaseURL,
		CertPath:       cfg.Client.CertPath,
		RootCertPath:   cfg.Client.RootCertPath,
		Passphrase:     cfg.Client.Passphrase,
		Timeout:        cfg.Client.Timeout,
		Logger:         logger,
	})
	if err != nil {
		logger.Error("failed to build swish client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	reference := uuid.NewString()

	created, err := client.CreatePayment(ctx, swish.PaymentParams{
		PayeePaymentReference: reference,
		PayerAlias:            cfg.Demo.PayerAlias,
		Amount:                cfg.Demo.Amount,
		Message:               cfg.Demo.Message,
		CallbackURL:           cfg.Demo.CallbackURL,
	})
	if err != nil {
		logSwishError(logger, "create payment failed", err)
		os.Exit(1)
	}

	logger.Info("payment created",
		"id", created.ID,
		"location", created.Location,
		"request_token", created.RequestToken,
		"reference", reference,
	)

	payment, err := client.GetPayment(ctx, created.ID)
	if err != nil {
		logSwishError(logger, "get payment failed", err)
		os.Exit(1)
	}

	logger.Info("payment fetched",
		"id", payment.ID,
		"status", payment.Status,
		"amount", payment.Amount,
		"currency", payment.Currency,
		"date_created", payment.DateCreated,
	)
}

func logSwishError(logger *slog.Logger, msg string, err error) {
	if reqErr, ok := swish.IsRequestError(err); ok {
		logger.Error(msg,
			"status", reqErr.HTTPStatus,
			"code", reqErr.Code,
			"message", reqErr.Message,
		)
		return
	}
	if reqErrs, ok := swish.IsRequestErrors(err); ok {
		for _, reqErr := range reqErrs {
			logger.Error(msg,
				"status", reqErr.HTTPStatus,
				"code", reqErr.Code,
				"message", reqErr.Message,
			)
		}
		return
	}
	logger.Error(msg, "error", err)
}
