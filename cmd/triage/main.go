// Command triage runs the KB, similarity and analysis scorers against one
// ticket from the command line and prints the results as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/incidentdesk/backend/internal/ai"
	"github.com/incidentdesk/backend/internal/fixtures"
	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/service"
)

type options struct {
	title        string
	description  string
	category     string
	reportedBy   string
	mode         string
	fixturesPath string
	seed         int64
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	var opts options
	fs := flag.NewFlagSet("triage", flag.ContinueOnError)
	fs.StringVarP(&opts.title, "title", "t", "", "ticket title")
	fs.StringVarP(&opts.description, "description", "d", "", "ticket description")
	fs.StringVarP(&opts.category, "category", "c", "", "ticket category")
	fs.StringVar(&opts.reportedBy, "reported-by", "", "reporter name")
	fs.StringVarP(&opts.mode, "mode", "m", "all", "kb, similarity, analyze or all")
	fs.StringVar(&opts.fixturesPath, "fixtures", "", "YAML fixture override")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for the simulated similarIncidents value (0 = clock)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("triage failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if opts.title == "" || opts.description == "" {
		return fmt.Errorf("--title and --description are required")
	}
	fx, err := fixtures.Load(opts.fixturesPath)
	if err != nil {
		return err
	}

	result := map[string]any{}
	wantAll := opts.mode == "all"
	switch opts.mode {
	case "all", "kb", "similarity", "analyze":
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	if wantAll || opts.mode == "kb" {
		result["kbSuggestions"] = service.NewRelevanceScorer(fx.KBDocuments).Suggest(opts.title, opts.description, opts.category)
	}
	if wantAll || opts.mode == "similarity" {
		category := opts.category
		if category == "" {
			category = models.CategoryGeneral
		}
		result["similarity"] = service.NewSimilarityEngine(fx.HistoricalTickets).Check(models.TicketSummary{
			TicketID:    service.NewTicketID,
			Title:       opts.title,
			Description: opts.description,
			Category:    category,
			CreatedAt:   time.Now().UTC(),
		})
	}
	if wantAll || opts.mode == "analyze" {
		incidents := ai.RandomIncidents(nil)
		if opts.seed != 0 {
			incidents = ai.RandomIncidents(rand.New(rand.NewSource(opts.seed)))
		}
		analysis, err := ai.HeuristicAdapter{Incidents: incidents}.AnalyzeTicket(ctx, models.AnalysisRequest{
			TicketTitle:       opts.title,
			TicketDescription: opts.description,
			Category:          opts.category,
			ReportedBy:        opts.reportedBy,
		})
		if err != nil {
			return err
		}
		result["analysis"] = analysis
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
