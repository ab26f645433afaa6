package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/cassiomorais/paygrid/internal/gateway"
	"github.com/cassiomorais/paygrid/internal/service"
	"github.com/rs/zerolog"
)

// Walks one payment through each gateway, plus one rejection, printing
// everything to the console.
func main() {
	ctx := context.Background()

	console := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	opts := []gateway.Option{
		gateway.WithNoticeLogger(console),
		gateway.WithLogSink(zerolog.ConsoleWriter{Out: os.Stdout}),
	}

	steps := []struct {
		factory gateway.Factory
		cents   int64
		card    string
	}{
		{gateway.NewOmniPayFactory(opts...), 15000, "1234567890123456"},
		{gateway.NewMaxiPayFactory(opts...), 20000, "5234567890123456"},
		{gateway.NewVeloPayFactory(opts...), 10000, "4234567890123456"},
		// Rejected: maxipay only takes 5-series cards.
		{gateway.NewMaxiPayFactory(opts...), 30000, "1234567890123456"},
	}

	for _, step := range steps {
		svc := service.NewPaymentService(step.factory, service.WithLogger(console))

		amount, err := payment.NewAmount(step.cents, "USD")
		if err != nil {
			console.Fatal().Err(err).Msg("bad demo amount")
		}

		receipt, err := svc.ProcessPayment(ctx, amount, step.card)
		if err != nil {
			console.Fatal().Err(err).Msg("process payment")
		}

		if receipt.Completed() {
			fmt.Printf("%s: %s -> %s\n", receipt.Gateway, receipt.Amount, receipt.Reference)
		} else {
			fmt.Printf("%s: %s -> rejected\n", receipt.Gateway, receipt.Amount)
		}
	}
}
