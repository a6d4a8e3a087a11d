package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/checkout-sim/checkout-sim/sim"
	"github.com/checkout-sim/checkout-sim/sim/trace"
)

var (
	// CLI flags for the checkout roster
	numHumans   int // Number of human servers
	numSelfs    int // Number of self-checkout machines in the bank
	maxQueueLen int // Waitlist capacity per queue

	// CLI flags for the workload
	seed         int64   // Seed for every random stream
	numCustomers int     // Number of arriving customers
	arrivalRate  float64 // Customers per unit time
	serviceRate  float64 // Services per unit time
	greedyProb   float64 // Chance that a customer is greedy

	// CLI flags for human-server breaks
	restRate float64 // Breaks end at this rate
	restProb float64 // Chance a human server rests after a service

	rngFamily   string // Random stream family
	configPath  string // YAML parameter file
	readStdin   bool   // Read the ten positional parameters from stdin
	logLevel    string // Log verbosity level
	reportPath  string // YAML run report output
	showSummary bool   // Print the trace summary after the statistics line
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "checkout-sim",
	Short: "Discrete-event simulator for supermarket checkout queues",
}

// runCmd executes the simulation using parameters from defaults, file, stdin and flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checkout simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := resolveConfig(cmd, os.Stdin)
		if err != nil {
			return err
		}
		logrus.Infof("Starting simulation: seed=%d rng=%s humans=%d selfs=%d maxQ=%d customers=%d",
			cfg.Seed, cfg.RNG, cfg.Roster.NumHumanServers, cfg.Roster.NumSelfCheckouts,
			cfg.Roster.MaxQueueLength, cfg.Workload.NumCustomers)

		return runSimulation(cfg, runOptions{
			ReportPath:  reportPath,
			ShowSummary: showSummary,
		}, cmd.OutOrStdout())
	},
}

// resolveConfig layers the parameter sources: built-in defaults, the YAML
// file, stdin, then any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, stdin io.Reader) (sim.SimConfig, error) {
	cfg := defaultSimConfig()
	if configPath != "" {
		fileCfg, err := loadSimConfig(configPath)
		if err != nil {
			return sim.SimConfig{}, err
		}
		cfg = fileCfg
	}
	if readStdin {
		if err := readStdinParams(stdin, &cfg); err != nil {
			return sim.SimConfig{}, err
		}
	}
	applyFlagOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return sim.SimConfig{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides copies only the flags the user passed, so that
// defaults never clobber file or stdin values.
func applyFlagOverrides(cmd *cobra.Command, cfg *sim.SimConfig) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("rng") {
		cfg.RNG = sim.RNGFamily(rngFamily)
	}
	if flags.Changed("humans") {
		cfg.Roster.NumHumanServers = numHumans
	}
	if flags.Changed("self-checkouts") {
		cfg.Roster.NumSelfCheckouts = numSelfs
	}
	if flags.Changed("max-queue") {
		cfg.Roster.MaxQueueLength = maxQueueLen
	}
	if flags.Changed("customers") {
		cfg.Workload.NumCustomers = numCustomers
	}
	if flags.Changed("arrival-rate") {
		cfg.Workload.ArrivalRate = arrivalRate
	}
	if flags.Changed("service-rate") {
		cfg.Workload.ServiceRate = serviceRate
	}
	if flags.Changed("greedy-prob") {
		cfg.Workload.GreedyProbability = greedyProb
	}
	if flags.Changed("rest-rate") {
		cfg.Rest.RestRate = restRate
	}
	if flags.Changed("rest-prob") {
		cfg.Rest.RestProbability = restProb
	}
}

// runOptions selects the optional outputs of a run.
type runOptions struct {
	ReportPath  string
	ShowSummary bool
}

// runSimulation builds the random process and the simulator, streams the
// visible trace to out and writes the requested extras.
func runSimulation(cfg sim.SimConfig, opts runOptions, out io.Writer) error {
	rp, err := sim.NewRandomProcess(cfg.RNG, cfg.Seed,
		cfg.Workload.ArrivalRate, cfg.Workload.ServiceRate, cfg.Rest.RestRate)
	if err != nil {
		return fmt.Errorf("building random process: %w", err)
	}
	s, err := sim.NewSimulator(cfg, rp)
	if err != nil {
		return err
	}
	if opts.ReportPath != "" || opts.ShowSummary {
		s.Trace = trace.NewSimulationTrace(trace.TraceLevelDecisions)
	}

	p := newTracePrinter(out)
	s.Run(p.Observe)
	if err := p.Err(); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	if _, err := fmt.Fprintln(out, s.Statistics()); err != nil {
		return fmt.Errorf("writing statistics: %w", err)
	}

	summary := trace.Summarize(s.Trace)
	if opts.ShowSummary {
		if err := printSummary(out, summary); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	if opts.ReportPath != "" {
		if err := writeReport(opts.ReportPath, newRunReport(cfg, s.Statistics(), summary)); err != nil {
			return err
		}
		logrus.Infof("Run report written to %s", opts.ReportPath)
	}
	logrus.Info("Simulation complete.")
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := defaultSimConfig()

	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for every random stream")
	runCmd.Flags().StringVar(&rngFamily, "rng", string(defaults.RNG), "Random stream family (lcg48, partitioned)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Roster
	runCmd.Flags().IntVar(&numHumans, "humans", defaults.Roster.NumHumanServers, "Number of human servers")
	runCmd.Flags().IntVar(&numSelfs, "self-checkouts", defaults.Roster.NumSelfCheckouts, "Number of self-checkout machines")
	runCmd.Flags().IntVar(&maxQueueLen, "max-queue", defaults.Roster.MaxQueueLength, "Maximum waitlist length per queue")

	// Workload
	runCmd.Flags().IntVar(&numCustomers, "customers", defaults.Workload.NumCustomers, "Number of customers")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", defaults.Workload.ArrivalRate, "Customer arrivals per unit time")
	runCmd.Flags().Float64Var(&serviceRate, "service-rate", defaults.Workload.ServiceRate, "Services per unit time")
	runCmd.Flags().Float64Var(&greedyProb, "greedy-prob", defaults.Workload.GreedyProbability, "Probability that a customer is greedy")

	// Breaks
	runCmd.Flags().Float64Var(&restRate, "rest-rate", defaults.Rest.RestRate, "Rate at which breaks end")
	runCmd.Flags().Float64Var(&restProb, "rest-prob", defaults.Rest.RestProbability, "Probability a human server rests after a service")

	// Inputs and outputs
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML parameter file")
	runCmd.Flags().BoolVar(&readStdin, "stdin", false, "Read seed humans selfs maxQ customers arrivalRate serviceRate restRate restProb greedyProb from stdin")
	runCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this path")
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a trace summary after the statistics line")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
