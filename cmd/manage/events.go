package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"study-assistant-be/internal/config"
	"study-assistant-be/pkg/events"
	pktNats "study-assistant-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var eventsSubject string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print chat events from NATS as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.Events.NatsURL == "" {
			return fmt.Errorf("NATS_URL is not set")
		}

		sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
		if err != nil {
			return err
		}
		defer sub.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		header := color.New(color.FgCyan, color.Bold)
		return sub.Subscribe(ctx, eventsSubject, "", func(_ context.Context, event events.Event) error {
			body, err := json.MarshalIndent(event.Payload(), "", "  ")
			if err != nil {
				return err
			}
			header.Fprintf(out, "%s %s\n", event.Timestamp().Format("15:04:05"), event.EventType())
			fmt.Fprintln(out, string(body))
			return nil
		})
	},
}

func init() {
	eventsCmd.Flags().StringVar(&eventsSubject, "subject", pktNats.SubjectPrefix+">", "subject filter")
}
