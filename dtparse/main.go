package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"

	"github.com/araddon/dtparse"
)

type cliFlags struct {
	configFile string
	timezone   string
	dayFirst   bool
	yearFirst  bool
	fuzzy      bool
	ignoreTZ   bool
	weekday    string
	def        string
	jsonOut    bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError().Err(err).Msg("dtparse failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   `dtparse [flags] "2009-08-12T22:15:09.99Z" ...`,
		Short: "Parse free-form dates and print them as seen from several zones",
		Long: `dtparse detects the layout of each argument and prints the parsed
time read in the local zone, the --timezone zone and UTC.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), f.verbose)

			cfg, err := loadConfig(f.configFile)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			zones, err := outputZones(cfg.Timezone)
			if err != nil {
				return err
			}

			rows, failed := parseAll(args, zones, opts)
			if f.jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(rows); err != nil {
					return errors.Wrap(err, "encode")
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(rows, cfg.Fuzzy).Render())
			}
			if failed > 0 {
				return errors.Errorf("%d of %d inputs did not parse", failed, len(args))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "TOML config file")
	fl.StringVar(&f.timezone, "timezone", "", "Timezone aka `America/Los_Angeles` formatted time-zone")
	fl.BoolVar(&f.dayFirst, "dayfirst", false, "read 01/02/2006 as 1 February")
	fl.BoolVar(&f.yearFirst, "yearfirst", false, "read 10/11/12 as 2010-11-12")
	fl.BoolVar(&f.fuzzy, "fuzzy", false, "skip text that is not part of the date and report it")
	fl.BoolVar(&f.ignoreTZ, "ignoretz", false, "drop zone names and offsets found in the input")
	fl.StringVar(&f.weekday, "weekday", "", "bare weekday search: forward, backward or nearest")
	fl.StringVar(&f.def, "default", "", "date supplying the fields the input leaves out")
	fl.BoolVar(&f.jsonOut, "json", false, "print results as JSON instead of a table")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// apply copies the flags given on the command line over the file config.
func (f *cliFlags) apply(cmd *cobra.Command, cfg *fileConfig) {
	changed := cmd.Flags().Changed
	if changed("timezone") {
		cfg.Timezone = f.timezone
	}
	if changed("dayfirst") {
		cfg.DayFirst = f.dayFirst
	}
	if changed("yearfirst") {
		cfg.YearFirst = f.yearFirst
	}
	if changed("fuzzy") {
		cfg.Fuzzy = f.fuzzy
	}
	if changed("ignoretz") {
		cfg.IgnoreTZ = f.ignoreTZ
	}
	if changed("weekday") {
		cfg.Weekday = f.weekday
	}
	if changed("default") {
		cfg.Default = f.def
	}
}

type namedZone struct {
	name string
	loc  *time.Location
}

// outputZones lists the locations every input is read in: local, the
// configured timezone if any, and UTC.
func outputZones(timezone string) ([]namedZone, error) {
	local, _ := time.Now().In(time.Local).Zone()
	zones := []namedZone{{local, time.Local}}
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, errors.Wrap(err, "timezone")
		}
		zones = append(zones, namedZone{timezone, loc})
	}
	return append(zones, namedZone{"UTC", time.UTC}), nil
}

type resultRow struct {
	Input   string         `json:"input"`
	Zone    string         `json:"zone"`
	Time    time.Time      `json:"time"`
	HasZone bool           `json:"has_zone"`
	Skipped []dtparse.Span `json:"skipped,omitempty"`
}

// parseAll parses every input in every zone. Inputs that fail are logged and
// counted but do not stop the others.
func parseAll(inputs []string, zones []namedZone, opts []dtparse.ParserOption) ([]resultRow, int) {
	var rows []resultRow
	failed := 0
	for _, in := range inputs {
		for _, z := range zones {
			cfg := dtparse.NewConfig(append(opts[:len(opts):len(opts)], dtparse.InLocation(z.loc))...)
			res, err := dtparse.Parse(in, cfg)
			if err != nil {
				logError().Err(errors.Wrapf(err, "parse %q", in)).Msg("skipping input")
				failed++
				break
			}
			logDebug().Str("input", in).Str("zone", z.name).Bool("has_zone", res.HasZone).
				Int("skipped", len(res.Skipped)).Msg("parsed")
			rows = append(rows, resultRow{Input: in, Zone: z.name, Time: res.Time, HasZone: res.HasZone, Skipped: res.Skipped})
		}
	}
	return rows, failed
}

func renderTable(rows []resultRow, fuzzy bool) *termtables.Table {
	table := termtables.CreateTable()
	if fuzzy {
		table.AddHeaders("Input", "Timezone", "Parsed, and Output as %v", "Skipped")
	} else {
		table.AddHeaders("Input", "Timezone", "Parsed, and Output as %v")
	}
	for _, r := range rows {
		parsed := fmt.Sprintf("%v", r.Time)
		if !fuzzy {
			table.AddRow(r.Input, r.Zone, parsed)
			continue
		}
		var skipped []string
		for _, sp := range r.Skipped {
			skipped = append(skipped, sp.Text)
		}
		table.AddRow(r.Input, r.Zone, parsed, strings.Join(skipped, " | "))
	}
	return table
}
