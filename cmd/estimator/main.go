package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"wholesale_go/internal/app"
	"wholesale_go/internal/domain"
	"wholesale_go/internal/infra"
	"wholesale_go/internal/report"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// optionalInt records whether the flag was given at all
type optionalInt struct{ v *int }

func (o *optionalInt) String() string {
	if o.v == nil {
		return ""
	}
	return strconv.Itoa(*o.v)
}

func (o *optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.v = &n
	return nil
}

type optionalFloat struct{ v *float64 }

func (o *optionalFloat) String() string {
	if o.v == nil {
		return ""
	}
	return strconv.FormatFloat(*o.v, 'f', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.v = &f
	return nil
}

type options struct {
	configPath  string
	condition   string
	propType    string
	yearBuilt   optionalInt
	lotSqFt     optionalFloat
	targetFee   optionalFloat
	asJSON      bool
	listMarkets bool
	positional  []string
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("estimator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Wholesale estimator: evaluates a property, produces a repair and cost breakdown, and suggests an offer.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: estimator [flags] <location> <square_feet> <beds> <baths>")
		fmt.Fprintln(stderr, "       estimator -markets")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", infra.DefaultConfigPath, "path to the YAML config file (optional)")
	fs.StringVar(&opts.condition, "condition", string(domain.DefaultCondition),
		"current condition: turnkey, rent_ready, light_rehab, heavy_rehab, tear_down")
	fs.StringVar(&opts.propType, "property-type", string(domain.DefaultPropertyType),
		"property type: single_family, multi_family, condo, townhome")
	fs.Var(&opts.yearBuilt, "year-built", "year the property was built")
	fs.Var(&opts.lotSqFt, "lot-square-feet", "lot size in square feet, informs exterior scope")
	fs.Var(&opts.targetFee, "target-assignment-fee", "use this assignment fee instead of the market rate")
	fs.BoolVar(&opts.asJSON, "json", false, "print the estimate as JSON")
	fs.BoolVar(&opts.listMarkets, "markets", false, "list available markets and exit")
	return fs
}

// parseArgs accepts flags before, between or after the positional arguments
func parseArgs(argv []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)

	args := argv
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		opts.positional = append(opts.positional, args[0])
		args = args[1:]
	}

	if !opts.listMarkets && len(opts.positional) != 4 {
		fmt.Fprintf(stderr, "expected 4 arguments, got %d\n", len(opts.positional))
		fs.Usage()
		return nil, errors.New("wrong number of arguments")
	}
	return opts, nil
}

func (o *options) request() (domain.PropertyRequest, error) {
	// An empty flag value is a usage error; only unset flags take the defaults.
	if o.condition == "" {
		return domain.PropertyRequest{}, errors.New("-condition must not be empty")
	}
	if o.propType == "" {
		return domain.PropertyRequest{}, errors.New("-property-type must not be empty")
	}

	nums := make([]float64, 3)
	names := []string{"square_feet", "beds", "baths"}
	for i, s := range o.positional[1:] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.PropertyRequest{}, fmt.Errorf("%s: %q is not a number", names[i], s)
		}
		nums[i] = f
	}

	req := domain.NewPropertyRequest(o.positional[0], nums[0], nums[1], nums[2])
	req.Condition = domain.Condition(o.condition)
	req.PropertyType = domain.PropertyType(o.propType)
	req.YearBuilt = o.yearBuilt.v
	req.LotSquareFeet = o.lotSqFt.v
	req.TargetAssignmentFee = o.targetFee.v
	return req, nil
}

func run(argv []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	req := domain.PropertyRequest{}
	if !opts.listMarkets {
		if req, err = opts.request(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
	}

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(opts.configPath); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	if opts.listMarkets {
		for _, m := range bootstrap.Service.Markets() {
			fmt.Fprintln(stdout, m)
		}
		return exitOK
	}

	ctx := context.Background()
	est, err := bootstrap.Service.Estimate(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	if opts.asJSON {
		err = report.JSON(stdout, est)
	} else {
		err = report.Text(stdout, est, report.Options{Color: colorEnabled(stdout)})
	}
	if err != nil {
		slog.Error("Failed to write report", slog.Any("error", err))
		return exitError
	}
	return exitOK
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && os.Getenv("NO_COLOR") == "" && report.IsTerminal(f)
}
