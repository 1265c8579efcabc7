package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/orders/cmd/app/commands"
	"github.com/allisson/orders/internal/app"
	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	"github.com/allisson/orders/internal/config"
)

func getOrderCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "process-order",
			Usage: "Run the processing pipeline for an order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "order-id",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Order identifier",
				},
				&cli.StringFlag{
					Name:    "notes",
					Aliases: []string{"n"},
					Usage:   "Free-form processing notes",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				processingUseCase, err := container.ProcessingUseCase()
				if err != nil {
					return err
				}

				return commands.RunProcessOrder(
					ctx,
					processingUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("order-id"),
					cmd.String("notes"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "processing-status",
			Usage: "Show the processing status of an order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "order-id",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Order identifier",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				processingUseCase, err := container.ProcessingUseCase()
				if err != nil {
					return err
				}

				return commands.RunProcessingStatus(
					ctx,
					processingUseCase,
					commands.DefaultIO().Writer,
					cmd.String("order-id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "cancel-order",
			Usage: "Cancel an order and initiate its refund",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "order-id",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Order identifier",
				},
				&cli.StringFlag{
					Name:     "customer-id",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Customer requesting the cancellation",
				},
				&cli.StringFlag{
					Name:    "reason",
					Aliases: []string{"r"},
					Usage:   "Cancellation reason",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cancellationUseCase, err := container.CancellationUseCase()
				if err != nil {
					return err
				}

				return commands.RunCancelOrder(
					ctx,
					cancellationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cancellationDomain.CancelOrderInput{
						OrderID:    cmd.String("order-id"),
						CustomerID: cmd.String("customer-id"),
						Reason:     cmd.String("reason"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "can-cancel",
			Usage: "Check whether an order can still be cancelled",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "order-id",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Order identifier",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cancellationUseCase, err := container.CancellationUseCase()
				if err != nil {
					return err
				}

				return commands.RunCanCancel(
					ctx,
					cancellationUseCase,
					commands.DefaultIO().Writer,
					cmd.String("order-id"),
					cmd.String("format"),
				)
			},
		},
	}
}

func getOfferCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list-offers",
			Usage: "List active offers, optionally only those applicable to an order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "order-amount",
					Aliases: []string{"a"},
					Usage:   "Order amount; when set only applicable offers are listed",
				},
				&cli.StringFlag{
					Name:    "category",
					Aliases: []string{"c"},
					Value:   "All",
					Usage:   "Order category",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				offerUseCase, err := container.OfferUseCase()
				if err != nil {
					return err
				}

				return commands.RunListOffers(
					ctx,
					offerUseCase,
					commands.DefaultIO().Writer,
					cmd.String("order-amount"),
					cmd.String("category"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "best-offer",
			Usage: "Show the offer with the highest discount for an order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "order-amount",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Order amount",
				},
				&cli.StringFlag{
					Name:    "category",
					Aliases: []string{"c"},
					Value:   "All",
					Usage:   "Order category",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				offerUseCase, err := container.OfferUseCase()
				if err != nil {
					return err
				}

				return commands.RunBestOffer(
					ctx,
					offerUseCase,
					commands.DefaultIO().Writer,
					cmd.String("order-amount"),
					cmd.String("category"),
					cmd.String("format"),
				)
			},
		},
	}
}
