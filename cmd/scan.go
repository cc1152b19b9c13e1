package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theopenlane/mailaudit/config"
	"github.com/theopenlane/mailaudit/internal/domainlist"
	"github.com/theopenlane/mailaudit/internal/emailauth"
	"github.com/theopenlane/mailaudit/internal/report"
	"github.com/theopenlane/mailaudit/internal/scanner"
	"github.com/theopenlane/mailaudit/internal/types"
)

const banner = `
                  _ _                 _ _ _
  _ __ ___   __ _(_) | __ _ _   _  __| (_) |_
 | '_ ` + "`" + ` _ \ / _` + "`" + ` | | |/ _` + "`" + ` | | | |/ _` + "`" + ` | | __|
 | | | | | | (_| | | | (_| | |_| | (_| | | |_
 |_| |_| |_|\__,_|_|_|\__,_|\__,_|\__,_|_|\__|
   ------------------------------------------
      SPF   |   DKIM   |   DMARC   AUDIT
   ------------------------------------------
`

// scanCmd is the cobra command that runs a batch domain scan
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "audit SPF, DKIM, and DMARC posture for a list of domains",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return scan(cmd)
	},
}

// init registers the scan command and its flags on the root command
func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("input-file", "i", "domains.txt", "path to file with domain names, one per line")
	scanCmd.Flags().String("output-csv", "domain_check_results.csv", "base name for CSV output (timestamp appended)")
	scanCmd.Flags().String("output-html", "domain_check_results.html", "base name for HTML output (timestamp appended)")
	scanCmd.Flags().IntP("workers", "w", 10, "number of concurrent domain evaluations")
	scanCmd.Flags().String("nameserver", "", "custom DNS nameserver, e.g. 8.8.8.8")
	scanCmd.Flags().Float64("timeout", 3.0, "DNS query timeout in seconds")
	scanCmd.Flags().StringSlice("dkim-selectors", emailauth.DefaultSelectors, "DKIM selectors to try; pass an empty value to skip DKIM probing")
	scanCmd.Flags().String("profile", "", "optional YAML scan profile file")
}

// scanSettings are the resolved inputs of one scan run. Precedence is
// environment config, then profile file, then explicitly set flags.
type scanSettings struct {
	inputFile      string
	outputCSV      string
	outputHTML     string
	workers        int
	nameserver     string
	timeoutSeconds float64
	selectors      []string
}

// scan runs a full batch audit and writes the CSV and HTML reports
func scan(cmd *cobra.Command) error {
	settings, err := resolveScanSettings(cmd)
	if err != nil {
		return err
	}

	_, _ = color.New(color.FgHiMagenta).Fprint(os.Stderr, banner, "\n")

	domains, err := domainlist.Load(settings.inputFile)
	if err != nil {
		return fmt.Errorf("loading domains: %w", err)
	}

	s, err := scanner.New(
		scanner.WithWorkers(settings.workers),
		scanner.WithNameserver(settings.nameserver),
		scanner.WithQueryTimeout(time.Duration(settings.timeoutSeconds*float64(time.Second))),
		scanner.WithSelectors(settings.selectors),
		scanner.WithProgress(logProgress),
	)
	if err != nil {
		return fmt.Errorf("initializing scanner: %w", err)
	}

	log.Info().Int("domains", len(domains)).Int("workers", settings.workers).Msg("starting scan")

	rep, err := s.Scan(cmd.Context(), domains)
	if err != nil {
		return fmt.Errorf("running scan: %w", err)
	}

	csvPath, err := report.WriteCSV(rep, settings.outputCSV)
	if err != nil {
		return fmt.Errorf("writing csv report: %w", err)
	}

	htmlPath, err := report.WriteHTML(rep, settings.outputHTML)
	if err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}

	log.Info().
		Str("scan_id", rep.ScanID).
		Float64("duration_seconds", rep.DurationSeconds).
		Str("csv", csvPath).
		Str("html", htmlPath).
		Msg("scan complete")

	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "\nScan complete!\n  CSV results  -> %s\n  HTML results -> %s\n", csvPath, htmlPath)

	return nil
}

// logProgress emits one console line per completed domain evaluation
func logProgress(p types.Progress) {
	log.Info().
		Str("domain", p.Domain).
		Int("completed", p.Completed).
		Int("total", p.Total).
		Str("percent", fmt.Sprintf("%.2f%%", p.Percent)).
		Msg("checked")
}

// resolveScanSettings layers environment defaults, the optional profile
// file, and explicitly set flags into the final scan inputs
func resolveScanSettings(cmd *cobra.Command) (scanSettings, error) {
	cfg := config.New()

	settings := scanSettings{
		inputFile:      k.String("input-file"),
		outputCSV:      cfg.OutputCSV,
		outputHTML:     cfg.OutputHTML,
		workers:        cfg.Workers,
		nameserver:     cfg.Nameserver,
		timeoutSeconds: cfg.QueryTimeout.Seconds(),
		selectors:      cfg.DKIMSelectors,
	}

	if path := k.String("profile"); path != "" {
		profile, err := config.LoadProfile(path)
		if err != nil {
			return scanSettings{}, fmt.Errorf("loading scan profile: %w", err)
		}

		settings.inputFile = profile.InputFile
		settings.outputCSV = profile.OutputCSV
		settings.outputHTML = profile.OutputHTML
		settings.workers = profile.Workers
		settings.nameserver = profile.Nameserver
		settings.timeoutSeconds = profile.TimeoutSeconds

		if profile.DKIMSelectors != nil {
			settings.selectors = profile.DKIMSelectors
		}
	}

	flags := cmd.Flags()

	if flags.Changed("input-file") {
		settings.inputFile = k.String("input-file")
	}

	if flags.Changed("output-csv") {
		settings.outputCSV = k.String("output-csv")
	}

	if flags.Changed("output-html") {
		settings.outputHTML = k.String("output-html")
	}

	if flags.Changed("workers") {
		settings.workers = k.Int("workers")
	}

	if flags.Changed("nameserver") {
		settings.nameserver = k.String("nameserver")
	}

	if flags.Changed("timeout") {
		settings.timeoutSeconds = k.Float64("timeout")
	}

	if flags.Changed("dkim-selectors") {
		settings.selectors = compactSelectors(k.Strings("dkim-selectors"))
	}

	return settings, nil
}

// compactSelectors drops empty entries so --dkim-selectors="" yields an
// explicitly empty list, which forces the DKIM verdict to Unknown
func compactSelectors(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}
