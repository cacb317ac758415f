package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ordbench/layerheur/pkg/clock"
	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/heuristic"
	"github.com/ordbench/layerheur/pkg/ioformat/dotord"
	"github.com/ordbench/layerheur/pkg/ioformat/sgf"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/objective"
	"github.com/ordbench/layerheur/pkg/order"
	"github.com/ordbench/layerheur/pkg/randsrc"
	"github.com/ordbench/layerheur/pkg/runstore"
	"github.com/ordbench/layerheur/pkg/statusserver"
	"github.com/ordbench/layerheur/pkg/stretch"
	"github.com/ordbench/layerheur/pkg/telemetry"
)

// runOptions collects every flag in spec §6.3's command surface, plus
// the supplemented ones SPEC_FULL.md adds.
type runOptions struct {
	ordPath          string
	output           string
	preprocessor     string
	heuristicName    string
	isolated         string
	maxIterations    int
	maxRuntime       time.Duration
	seed             uint64
	standard         bool
	postProcess      bool
	paretoPair       string
	paretoOut        string
	objectiveTag     string
	captureIters     string
	traceEvery       int
	statusAddr       string
	cacheDir         string
	redisAddr        string
	mongoURI         string
	noTUI            bool
}

func (c *CLI) runCommand() *cobra.Command {
	opts := runOptions{
		preprocessor:  c.Config.Preprocessor,
		heuristicName: c.Config.Heuristic,
		isolated:      "left",
		maxIterations: c.Config.MaxIterations,
		seed:          c.Config.Seed,
		standard:      c.Config.Standard,
		postProcess:   c.Config.PostProcess,
		paretoPair:    c.Config.ParetoPair,
		objectiveTag:  c.Config.ObjectiveTag,
		traceEvery:    c.Config.TraceEvery,
		statusAddr:    c.Config.StatusAddr,
		redisAddr:     c.Config.RedisAddr,
		mongoURI:      c.Config.MongoURI,
	}
	if c.Config.MaxRuntime != "" {
		if d, err := time.ParseDuration(c.Config.MaxRuntime); err == nil {
			opts.maxRuntime = d
		}
	}
	if opts.traceEvery == 0 {
		opts.traceEvery = 1
	}
	if opts.heuristicName == "" {
		opts.heuristicName = "mod_bary"
	}
	if opts.preprocessor == "" {
		opts.preprocessor = "none"
	}
	if opts.objectiveTag == "" {
		opts.objectiveTag = "t"
	}

	cmd := &cobra.Command{
		Use:   "run [graph.sgf|graph.dot]",
		Short: "Run a layered-graph ordering heuristic to completion",
		Long: `Run reads a layered graph (SGF, or DOT paired with --ord), applies the
chosen preprocessor and heuristic driver until termination, and writes
the best ordering found back out in the same format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.ordPath, "ord", "", "path to the paired .ord file (required when the input is DOT)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: <input>.out.<ext>)")
	cmd.Flags().StringVar(&opts.preprocessor, "preprocessor", opts.preprocessor, "initial-order assigner: none, bfs, dfs, mds")
	cmd.Flags().StringVar(&opts.heuristicName, "heuristic", opts.heuristicName, "heuristic driver: median, bary, mod_bary, mcn, sifting, mce, mce_s, mse")
	cmd.Flags().StringVar(&opts.isolated, "isolated", opts.isolated, "isolated-node weight policy: left, avg, none")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", opts.maxIterations, "iteration budget (0 = unbounded)")
	cmd.Flags().DurationVar(&opts.maxRuntime, "max-runtime", opts.maxRuntime, "wall-clock budget (0 = unbounded)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "deterministic PRNG seed")
	cmd.Flags().BoolVar(&opts.standard, "standard", opts.standard, "stop at the first no-improvement pass")
	cmd.Flags().BoolVar(&opts.postProcess, "post-process", opts.postProcess, "run the even/odd adjacent-swap optimizer after the driver")
	cmd.Flags().StringVar(&opts.paretoPair, "pareto-pair", opts.paretoPair, "Pareto objective pair: none, bottleneck-total, stretch-total, bottleneck-stretch")
	cmd.Flags().StringVar(&opts.paretoOut, "pareto-out", "", "write the Pareto frontier as (x, y, capture-file) rows to this file")
	cmd.Flags().StringVar(&opts.objectiveTag, "objective-tag", opts.objectiveTag, "objective whose best snapshot is written: t, b, s, bs")
	cmd.Flags().StringVar(&opts.captureIters, "capture-iteration", "", "comma-separated iteration numbers to snapshot to their own capture file")
	cmd.Flags().IntVar(&opts.traceEvery, "trace-frequency", opts.traceEvery, "log a debug trace line every N iterations")
	cmd.Flags().StringVar(&opts.statusAddr, "status-addr", opts.statusAddr, "serve GET /status on this address while the run is in progress (e.g. :8080)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for the file-backed run-result cache (disabled if empty)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis address for the opt-in shared run-result cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB URI to record this run to run history")
	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "disable the live progress dashboard, log plain trace lines instead")

	return cmd
}

func heuristicKinds() map[string]bool {
	return map[string]bool{
		"median": true, "bary": true, "mod_bary": true, "mcn": true,
		"sifting": true, "mce": true, "mce_s": true, "mse": true,
	}
}

func parsePreprocessor(s string) (order.Preprocessor, error) {
	switch s {
	case "none", "":
		return order.PreprocessorNone, nil
	case "bfs":
		return order.PreprocessorBFS, nil
	case "dfs":
		return order.PreprocessorDFS, nil
	case "mds":
		return order.PreprocessorMDS, nil
	default:
		return 0, fmt.Errorf("unknown preprocessor %q", s)
	}
}

func parseIsolated(s string) (order.IsolatedPolicy, error) {
	switch s {
	case "left", "":
		return order.IsolatedLeft, nil
	case "avg":
		return order.IsolatedAvg, nil
	case "none":
		return order.IsolatedNone, nil
	default:
		return 0, fmt.Errorf("unknown isolated-node policy %q", s)
	}
}

func parseObjectiveTag(s string) (objective.Kind, error) {
	switch s {
	case "t", "":
		return objective.TotalCrossings, nil
	case "b":
		return objective.BottleneckCrossings, nil
	case "s":
		return objective.TotalStretch, nil
	case "bs":
		return objective.BottleneckStretch, nil
	default:
		return 0, fmt.Errorf("unknown objective tag %q (want t, b, s, bs)", s)
	}
}

func parseParetoPair(s string) (x, y objective.Kind, enabled bool, err error) {
	switch s {
	case "", "none":
		return 0, 0, false, nil
	case "bottleneck-total":
		return objective.BottleneckCrossings, objective.TotalCrossings, true, nil
	case "stretch-total":
		return objective.TotalStretch, objective.TotalCrossings, true, nil
	case "bottleneck-stretch":
		return objective.BottleneckCrossings, objective.TotalStretch, true, nil
	default:
		return 0, 0, false, fmt.Errorf("unknown pareto pair %q", s)
	}
}

func parseCaptureIterations(s string) (map[int]bool, error) {
	m := map[int]bool{}
	if s == "" {
		return m, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid --capture-iteration entry %q: %w", part, err)
		}
		m[n] = true
	}
	return m, nil
}

// loadGraph reads input as a DOT+ORD pair when ordPath is set and as SGF
// otherwise (the file extension is not consulted), warning through the
// CLI logger on header/name mismatches rather than rejecting them.
func (c *CLI) loadGraph(input, ordPath string) (*layered.Graph, error) {
	warn := func(format string, args ...any) {
		c.Logger.Warnf(format, args...)
	}

	if ordPath != "" {
		dotF, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", input, err)
		}
		defer dotF.Close()
		ordF, err := os.Open(ordPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", ordPath, err)
		}
		defer ordF.Close()

		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return dotord.Read(dotF, ordF, name, dotord.Warnf(warn))
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()
	return sgf.Read(f, sgf.Warnf(warn))
}

func (c *CLI) writeGraph(g *layered.Graph, output, ordPath string) error {
	if ordPath != "" {
		dotOut := output
		ordOut := strings.TrimSuffix(output, filepath.Ext(output)) + ".ord"
		dotF, err := os.Create(dotOut)
		if err != nil {
			return err
		}
		defer dotF.Close()
		if err := dotord.WriteDOT(dotF, g); err != nil {
			return err
		}
		ordF, err := os.Create(ordOut)
		if err != nil {
			return err
		}
		defer ordF.Close()
		return dotord.WriteORD(ordF, g)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	return sgf.Write(f, g)
}

func defaultOutputPath(input string, isDOT bool) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if isDOT {
		return base + ".out.dot"
	}
	return base + ".out.sgf"
}

func (c *CLI) runRun(ctx context.Context, input string, opts runOptions) error {
	if !heuristicKinds()[opts.heuristicName] {
		return fmt.Errorf("unknown heuristic %q", opts.heuristicName)
	}
	preprocessor, err := parsePreprocessor(opts.preprocessor)
	if err != nil {
		return err
	}
	isolated, err := parseIsolated(opts.isolated)
	if err != nil {
		return err
	}
	objTag, err := parseObjectiveTag(opts.objectiveTag)
	if err != nil {
		return err
	}
	paretoX, paretoY, paretoEnabled, err := parseParetoPair(opts.paretoPair)
	if err != nil {
		return err
	}
	captureIters, err := parseCaptureIterations(opts.captureIters)
	if err != nil {
		return err
	}

	g, err := c.loadGraph(input, opts.ordPath)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	runID := uuid.NewString()
	g.AppendComment(fmt.Sprintf("layerheur run %s heuristic=%s preprocessor=%s seed=%d", runID, opts.heuristicName, opts.preprocessor, opts.seed))

	order.Apply(g, preprocessor)

	cc := crossing.NewCounter(g)
	sc := stretch.NewCounter(g)
	tr := objective.NewTracker(g, cc, sc)
	if paretoEnabled {
		tr.EnablePareto(paretoX, paretoY)
	}

	output := opts.output
	if output == "" {
		output = defaultOutputPath(input, opts.ordPath != "")
	}

	var captureWriter heuristic.CaptureWriter
	if len(captureIters) > 0 {
		captureWriter = func(cg *layered.Graph, iteration int) error {
			path := fmt.Sprintf("%s.%s.iter%d%s", strings.TrimSuffix(output, filepath.Ext(output)), runID[:8], iteration, filepath.Ext(output))
			return c.writeGraph(cg, path, opts.ordPath)
		}
	}

	cfg := heuristic.Config{
		MaxIterations:     opts.maxIterations,
		MaxRuntime:        opts.maxRuntime,
		Standard:          opts.standard,
		CaptureIterations: captureIters,
		Writer:            captureWriter,
	}

	engine := heuristic.NewEngine(ctx, g, cc, sc, tr, randsrc.New(opts.seed), clock.Real{}, cfg)

	hooks := fanoutHooks{loggingHooks{logger: c.Logger, traceEvery: opts.traceEvery}}

	var statusRecorder *statusserver.Recorder
	var statusSrv *statusserver.Server
	if opts.statusAddr != "" {
		statusRecorder = statusserver.NewRecorder()
		hooks = append(hooks, statusRecorder)
		srv, errCh := statusserver.New(opts.statusAddr, statusRecorder)
		statusSrv = srv
		go func() {
			if err := <-errCh; err != nil {
				c.Logger.Errorf("status server: %v", err)
			}
		}()
		defer statusSrv.Shutdown()
		printInfo("status server listening on %s", opts.statusAddr)
	}

	var dashboard *progressProgram
	if !opts.noTUI {
		dashboard = newProgressProgram(opts.heuristicName)
		hooks = append(hooks, dashboard.recorder)
		dashboard.Start()
		defer dashboard.Stop()
	}

	telemetry.Set(hooks)
	defer telemetry.Reset()

	telemetry.Get().OnRunStart(ctx, opts.heuristicName, opts.maxIterations, opts.maxRuntime)
	start := time.Now()

	result := runHeuristic(engine, opts.heuristicName, isolated)
	if opts.postProcess {
		ppResult := heuristic.RunPostProcess(engine)
		result = ppResult
	}

	telemetry.Get().OnRunComplete(ctx, result.Reason.String(), cc.TotalCrossings(), time.Since(start))

	best := tr.Record(objTag)
	if best.HasSnapshot() {
		g.RestoreOrder(best.Snapshot)
	}

	if err := c.writeGraph(g, output, opts.ordPath); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.paretoOut != "" && tr.Frontier() != nil {
		if err := writeParetoFrontier(opts.paretoOut, tr.Frontier(), g, output, opts.ordPath, runID, c); err != nil {
			return fmt.Errorf("write pareto frontier: %w", err)
		}
	}

	if err := c.recordRun(input, opts, runID, result, best); err != nil {
		c.Logger.Warnf("run-store: %v", err)
	}

	printSuccess("Run complete (%s)", result.Reason)
	printFile(output)
	printKeyValue("Iterations", strconv.Itoa(result.Iterations))
	printKeyValue("Total crossings", strconv.Itoa(cc.TotalCrossings()))
	return nil
}

func runHeuristic(e *heuristic.Engine, name string, isolated order.IsolatedPolicy) heuristic.Result {
	switch name {
	case "median":
		return heuristic.RunMedian(e, isolated)
	case "bary":
		return heuristic.RunBarycenter(e, isolated)
	case "mod_bary":
		return heuristic.RunModifiedBarycenter(e, isolated)
	case "mcn":
		return heuristic.RunMCN(e)
	case "sifting":
		return heuristic.RunSifting(e)
	case "mce":
		return heuristic.RunMCE(e, heuristic.MCENodes)
	case "mce_s":
		return heuristic.RunMCES(e)
	case "mse":
		return heuristic.RunMSE(e)
	default:
		panic("unreachable: heuristic name validated in runRun")
	}
}

func writeParetoFrontier(path string, f *objective.Frontier, g *layered.Graph, outputBase, ordPath, runID string, c *CLI) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	fmt.Fprintf(out, "# x=%s y=%s\n", f.XKind, f.YKind)
	for i, p := range f.Points() {
		capturePath := fmt.Sprintf("%s.%s.pareto%d%s", strings.TrimSuffix(outputBase, filepath.Ext(outputBase)), runID[:8], i, filepath.Ext(outputBase))
		g.RestoreOrder(p.Snapshot)
		if err := c.writeGraph(g, capturePath, ordPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "%g\t%g\t%s\n", p.X, p.Y, capturePath)
	}
	return nil
}

func (c *CLI) recordRun(input string, opts runOptions, runID string, result heuristic.Result, best *objective.Record) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	run := runstore.Run{
		ID:            runID,
		GraphName:     filepath.Base(input),
		Heuristic:     opts.heuristicName,
		Options: map[string]string{
			"preprocessor": opts.preprocessor,
			"seed":         strconv.FormatUint(opts.seed, 10),
		},
		Objectives:    map[string]float64{opts.objectiveTag: best.Best},
		BestIteration: best.BestIteration,
		Elapsed:       result.Elapsed,
		CompletedAt:   time.Now(),
	}

	var stores []runstore.Store
	if opts.cacheDir != "" {
		fs, err := runstore.NewFileStore(opts.cacheDir)
		if err != nil {
			return err
		}
		defer fs.Close()
		stores = append(stores, fs)
	}
	key := runstore.Key(content, opts.heuristicName, run.Options)
	for _, s := range stores {
		if err := s.Put(key, run); err != nil {
			return err
		}
	}

	if opts.mongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recordHistory(ctx, opts.mongoURI, run); err != nil {
			return err
		}
	}
	if opts.redisAddr != "" {
		if err := recordRedis(opts.redisAddr, key, run); err != nil {
			return err
		}
	}
	return nil
}
