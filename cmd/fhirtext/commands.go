package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/fhirtext"
	"github.com/bjaus/fhirtext/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// app carries the settings resolved from configuration and flags.
type app struct {
	log    zerolog.Logger
	style  fhirtext.Style
	order  fhirtext.Order
	format report.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fhirtext",
		Short:         "Render FHIR names, addresses and contact points as text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	root.PersistentFlags().Bool("html", false, "render HTML instead of plain text")
	root.PersistentFlags().Bool("natural", false, "render names in natural order (Prefix Given Family Suffix)")

	root.AddCommand(a.namesCmd())
	root.AddCommand(a.addressCmd())
	root.AddCommand(a.telecomCmd())
	root.AddCommand(a.referenceCmd())
	root.AddCommand(a.reportCmd())
	root.AddCommand(a.narrativeCmd())
	root.AddCommand(a.pagesCmd())
	return root
}

// configure loads the configuration and applies flag overrides.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if html, _ := cmd.Flags().GetBool("html"); html {
		cfg.Style = fhirtext.HTML.String()
	}
	if natural, _ := cmd.Flags().GetBool("natural"); natural {
		cfg.Order = fhirtext.Natural.String()
	}
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.style, _ = fhirtext.ParseStyle(cfg.Style)
	a.order, _ = fhirtext.ParseOrder(cfg.Order)
	a.format, _ = report.ParseFormat(cfg.Format)
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(cfg.LogLevel).With().Timestamp().Logger()
	a.log.Debug().
		Str("style", a.style.String()).
		Str("order", a.order.String()).
		Str("format", a.format.String()).
		Msg("Configuration loaded")
	return nil
}

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names FILE",
		Short: "Print the names of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readRecord(args[0])
			if err != nil {
				return err
			}
			out, err := fhirtext.HumanNames(rec.Name, a.style, a.order)
			return a.print(cmd.OutOrStdout(), rec, out, err)
		},
	}
}

func (a *app) addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address FILE",
		Short: "Print the addresses of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readRecord(args[0])
			if err != nil {
				return err
			}
			out, err := fhirtext.Addresses(rec.Address, a.style)
			return a.print(cmd.OutOrStdout(), rec, out, err)
		},
	}
}

func (a *app) telecomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "telecom FILE",
		Short: "Print the contact points of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readRecord(args[0])
			if err != nil {
				return err
			}
			out, err := fhirtext.Telecoms(rec.Telecom, a.style)
			return a.print(cmd.OutOrStdout(), rec, out, err)
		},
	}
}

func (a *app) referenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference FILE",
		Short: "Print a Reference to a resource as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readFile(args[0])
			if err != nil {
				return err
			}
			res, err := fhirtext.ResourceOf(data)
			if err != nil {
				return err
			}
			display, _ := cmd.Flags().GetString("display")
			ref, err := fhirtext.ToReference(res, display)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ref)
		},
	}
	cmd.Flags().String("display", "", "display text of the reference (default: the resource type)")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report FILE...",
		Short: "Print a report of resources and Bundles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []fhirtext.Record
			for _, path := range args {
				recs, err := a.readRecords(path)
				if err != nil {
					return err
				}
				records = append(records, recs...)
			}
			title, _ := cmd.Flags().GetString("title")
			maxWidth, _ := cmd.Flags().GetInt("max-width")
			a.log.Debug().Int("count", len(records)).Msg("Rendering report")
			return report.Write(cmd.OutOrStdout(), a.format, report.Options{
				Order:    a.order,
				Title:    title,
				MaxWidth: maxWidth,
			}, records...)
		},
	}
	cmd.Flags().String("format", report.Text.String(), fmt.Sprintf("output format, one of %v", report.Formats()))
	cmd.Flags().String("title", "", "title printed above the report")
	cmd.Flags().Int("max-width", 0, "truncate table cells to this width (0: no limit)")
	return cmd
}

func (a *app) narrativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "narrative FILE",
		Short: "Print the narrative of a resource as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readRecord(args[0])
			if err != nil {
				return err
			}
			if rec.Text == nil {
				a.log.Warn().Str("resource", rec.String()).Msg("Resource has no narrative")
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fhirtext.NarrativeText(rec.Text))
			return err
		},
	}
}

func (a *app) pagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages FILE",
		Short: "Print the paging links of a searchset Bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readFile(args[0])
			if err != nil {
				return err
			}
			bundle, err := fhir.UnmarshalBundle(data)
			if err != nil {
				return fmt.Errorf("%w: bundle: %w", fhirtext.ErrInvalidRecord, err)
			}
			links, err := fhirtext.PageLinks(bundle)
			if err != nil {
				return err
			}
			for _, link := range links {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), link); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) print(w io.Writer, rec fhirtext.Record, out string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", rec.String(), err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func (a *app) readFile(path string) ([]byte, error) {
	a.log.Debug().Str("path", path).Msg("Reading resource")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (a *app) readRecord(path string) (fhirtext.Record, error) {
	data, err := a.readFile(path)
	if err != nil {
		return fhirtext.Record{}, err
	}
	return fhirtext.ParseRecord(data)
}

// readRecords reads a single resource, or every resource of a Bundle.
func (a *app) readRecords(path string) ([]fhirtext.Record, error) {
	data, err := a.readFile(path)
	if err != nil {
		return nil, err
	}
	res, err := fhirtext.ResourceOf(data)
	if err != nil {
		return nil, err
	}
	if res.Type == "Bundle" {
		return fhirtext.BundleRecords(data)
	}
	rec, err := fhirtext.ParseRecord(data)
	if err != nil {
		return nil, err
	}
	return []fhirtext.Record{rec}, nil
}
