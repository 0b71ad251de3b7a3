package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"leetstats/lib/configutil"
	"leetstats/lib/readme"
	"leetstats/lib/restyutil"
	"leetstats/lib/scrapers/leetcode"
	"leetstats/lib/stats"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// Config is the optional config.json5 next to the working directory.
// Everything in it can also come from flags or the environment.
type Config struct {
	Username string        `json:"username"`
	Output   string        `json:"output"`
	Endpoint string        `json:"endpoint"`
	Totals   readme.Totals `json:"totals"`
}

type updateOptions struct {
	Username  string
	Output    string
	Endpoint  string
	DebugHttp string
}

var updateOpts updateOptions

func init() {
	updateCmd.Flags().StringVar(&updateOpts.Username, "username", "", "Override the LEETCODE_USERNAME environment variable.")
	updateCmd.Flags().StringVar(&updateOpts.Output, "output", "", "The file to overwrite with the rendered stats (default README.md).")
	updateCmd.Flags().StringVar(&updateOpts.Endpoint, "endpoint", "", "Base url of the LeetCode instance to query.")
	updateCmd.Flags().StringVar(&updateOpts.DebugHttp, "debug-http", "", "Directory to dump full HTTP exchanges into.")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetches stats for the configured user and overwrites the README.",
	Run: func(cmd *cobra.Command, args []string) {
		err := runUpdate(cmd.Context(), updateOpts)
		if err != nil {
			fatal("update failed", err)
		}
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runUpdate(ctx context.Context, opts updateOptions) error {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	username := firstNonEmpty(opts.Username, os.Getenv("LEETCODE_USERNAME"), cfg.Username)
	if username == "" {
		fmt.Fprintln(os.Stderr, "LEETCODE_USERNAME is not set!")
		fmt.Fprintln(os.Stderr, `set it with: export LEETCODE_USERNAME="your_username"`)
		fmt.Fprintln(os.Stderr, "or pass --username / put it in config.json5")
		return errors.New("no username configured")
	}

	output := firstNonEmpty(opts.Output, cfg.Output, "README.md")

	totals := readme.DefaultTotals
	if cfg.Totals.Easy > 0 {
		totals.Easy = cfg.Totals.Easy
	}
	if cfg.Totals.Medium > 0 {
		totals.Medium = cfg.Totals.Medium
	}
	if cfg.Totals.Hard > 0 {
		totals.Hard = cfg.Totals.Hard
	}

	var debug restyutil.InstrumentOutput
	if opts.DebugHttp != "" {
		debug = restyutil.NewFilesystemOutput(opts.DebugHttp)
	}
	client := leetcode.NewClient(leetcode.ClientOptions{
		BaseUrl: firstNonEmpty(opts.Endpoint, cfg.Endpoint),
		Debug:   debug,
	})

	slog.Info("fetching stats", "username", username)
	data, err := client.GetUserProfile(ctx, username)
	if err != nil {
		return err
	}

	rec := stats.Extract(data)
	content := readme.Render(rec, totals, time.Now())

	err = readme.Write(output, content)
	if err != nil {
		return err
	}

	printSummary(rec)
	slog.Info("readme updated", "path", output)
	return nil
}

func printSummary(rec stats.Record) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Username", rec.Username},
		{"Ranking", rec.Ranking},
		{"Total Solved", rec.TotalSolved},
		{"Easy / Medium / Hard", fmt.Sprintf("%d / %d / %d", rec.EasySolved, rec.MediumSolved, rec.HardSolved)},
		{"Contest Rating", rec.ContestRating},
		{"Contests Attended", rec.ContestsAttended},
		{"Top Percentage", rec.TopPercentage},
	})
	t.Render()
}
