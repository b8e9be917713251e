package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/octobees/leadscout/internal/catalog"
	"github.com/octobees/leadscout/internal/config"
	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/export"
	"github.com/octobees/leadscout/internal/llm"
	"github.com/octobees/leadscout/internal/service"
)

func newRootCmd(cfg *config.Config, factory llm.Factory, logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "leadscout",
		Short:        "Find and score local business leads",
		SilenceUsage: true,
	}
	root.AddCommand(newSearchCmd(cfg, factory, logger), newServicesCmd())
	return root
}

func newSearchCmd(cfg *config.Config, factory llm.Factory, logger *zap.Logger) *cobra.Command {
	var (
		niche    string
		location string
		count    int
		out      string
		apiKey   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for leads and write them as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if apiKey == "" {
				apiKey = cfg.GeminiAPIKey
			}
			if location == "" {
				location = cfg.Pipeline.DefaultLocation
			}

			svc := service.NewLeadsService(factory,
				service.WithBatchSize(cfg.Pipeline.BatchSize),
				service.WithBatchDelay(cfg.Pipeline.BatchDelay),
				service.WithMapsModel(cfg.Models.Maps),
				service.WithSanitizer(service.NewContactSanitizer(cfg.Pipeline.PhoneRegion)),
				service.WithLogger(logger),
			)

			stderr := cmd.ErrOrStderr()
			fmt.Fprintf(stderr, "Grounding search for %q in %q...\n", niche, location)
			leads, err := svc.Search(cmd.Context(), apiKey, entity.SearchParams{Niche: niche, Location: location, Count: count}, func(p service.SearchProgress) {
				fmt.Fprintf(stderr, "Batch %d/%d: %d leads so far\n", p.Batch, p.Batches, p.Leads)
			})
			if err != nil {
				return err
			}

			csv := export.LeadsCSV(leads) + "\n"
			if out == "" || out == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), csv)
				return err
			}
			if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(stderr, "Wrote %d leads to %s\n", len(leads), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&niche, "niche", "", "business niche, e.g. bakery")
	cmd.Flags().StringVar(&location, "location", "", "city or area to search")
	cmd.Flags().IntVar(&count, "count", 15, "number of leads to collect")
	cmd.Flags().StringVar(&out, "out", "", "CSV output file (default stdout)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (default GEMINI_API_KEY)")
	_ = cmd.MarkFlagRequired("niche")
	return cmd
}

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the service catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, offer := range catalog.Offers() {
				fmt.Fprintf(w, "%-6s %-22s %-8s %s\n", offer.ID, offer.Title, offer.Price, offer.Description)
				if len(offer.Features) > 0 {
					fmt.Fprintf(w, "       %s\n", strings.Join(offer.Features, ", "))
				}
			}
			return nil
		},
	}
}
