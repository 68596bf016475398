// Command pickroute plans a pick route over a warehouse layout file and
// prints the per-leg distance table.
//
//	pickroute -layout floor.csv [-config pickroute.yaml] [-mode greedy] [-return] [-export floor.yaml]
//
// With metrics_addr configured (or PICKROUTE_METRICS_ADDR set) the command
// keeps serving /metrics after planning until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/pickroute/config"
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/layout"
	"github.com/katalvlaran/pickroute/metrics"
	"github.com/katalvlaran/pickroute/planner"
	"github.com/katalvlaran/pickroute/route"
)

func main() {
	var (
		cfgPath    = flag.String("config", "", "YAML configuration file")
		layoutPath = flag.String("layout", "", "layout file (.csv, .yaml or .yml)")
		modeFlag   = flag.String("mode", "", "sequential | greedy (overrides config)")
		withReturn = flag.Bool("return", false, "release and print the return leg")
		exportPath = flag.String("export", "", "write the loaded layout to this file")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("pickroute: ")

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	} else {
		cfg.ApplyEnv()
	}
	if *modeFlag != "" {
		cfg.Mode = *modeFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *layoutPath == "" {
		log.Fatal("missing -layout")
	}

	rec := metrics.NewRecorder(nil)
	if err := run(os.Stdout, cfg, rec, *layoutPath, *exportPath, *withReturn); err != nil {
		log.Fatal(err)
	}

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, rec)
	}
}

func run(w io.Writer, cfg config.Config, rec *metrics.Recorder, layoutPath, exportPath string, withReturn bool) error {
	g, err := gridgraph.New(cfg.Grid.Columns, cfg.Grid.Rows)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	sess, err := planner.NewSession(g,
		planner.WithTSPOptions(cfg.TSPOptions()),
		planner.WithUnit(cfg.DistancePerCell),
		planner.WithMetrics(rec),
	)
	if err != nil {
		return err
	}

	records, err := readLayout(layoutPath)
	switch {
	case errors.Is(err, layout.ErrInvalidRecord):
		log.Printf("layout %s: %v", layoutPath, err)
	case err != nil:
		return err
	}
	if err = sess.LoadLayout(records); err != nil {
		log.Printf("layout %s: %v", layoutPath, err)
	}
	if exportPath != "" {
		if err = writeLayout(exportPath, sess.Snapshot()); err != nil {
			return err
		}
	}

	mode, err := planner.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	p, err := sess.Plan(mode)
	if err != nil {
		var ue *planner.UnreachableError
		if errors.As(err, &ue) && len(ue.Blockers) > 0 {
			log.Printf("walls cutting off pick points: %v", ue.Blockers)
		}
		return fmt.Errorf("plan: %w", err)
	}
	fmt.Fprintf(w, "plan %s  mode=%s  picks=%d  2-opt moves=%d\n", p.ID, p.Mode, len(p.Points)-1, p.Moves)
	for _, v := range p.Route.Visits {
		fmt.Fprintf(w, "  %2d %v\n", v.Order, v.Point)
	}

	// the outbound walk is shown in full before the return is released
	for sess.Displaying() {
		sess.Advance(2)
	}
	rows := sess.Table()
	if withReturn {
		if _, ok := sess.CommitReturn(); !ok {
			return errors.New("return leg not available")
		}
	} else {
		rows = outboundRows(rows)
	}

	return printTable(w, rows)
}

// outboundRows drops the return and grand-total rows.
func outboundRows(rows []route.TableRow) []route.TableRow {
	for i, r := range rows {
		if r.Label == route.LabelOutboundSum {
			return rows[:i+1]
		}
	}

	return rows
}

func printTable(w io.Writer, rows []route.TableRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "LEG\tCELLS\tDISTANCE\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t\n", r.Label, r.Hops, r.Units)
	}

	return tw.Flush()
}

func readLayout(path string) ([]layout.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return layout.ReadYAML(f)
	default:
		return layout.ReadCSV(f)
	}
}

func writeLayout(path string, records []layout.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export layout: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = layout.WriteYAML(f, records)
	default:
		err = layout.WriteCSV(f, records)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

func serveMetrics(addr string, rec *metrics.Recorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Printf("metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("metrics server: %v", err)
	}
}
