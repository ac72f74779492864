// Command dstarlite-sim is a headless driver for the D* Lite planner: it
// loads a scenario, builds a Planner from it, replays the scenario's script
// against the Planner's public operations, and logs the resulting path
// after every step.
package main

import (
	"fmt"
	"net/http"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/dstarlite/dstarlite"
	"github.com/katalvlaran/dstarlite/internal/metrics"
	"github.com/katalvlaran/dstarlite/scenario"
)

var CLI struct {
	Scenario    string `arg:"" name:"scenario" help:"Path to a scenario YAML file." type:"path"`
	MetricsAddr string `name:"metrics-addr" help:"If set, serve Prometheus metrics on this address (e.g. :9100)."`
	Verbose     bool   `name:"verbose" short:"v" help:"Enable debug-level logging, including per-replan compute-loop summaries."`
}

// plannerLogAdapter forwards the Planner's optional debug log line into the
// package-level charmbracelet/log logger, so compute-loop summaries share
// the same sink and level filtering as everything else the CLI prints.
type plannerLogAdapter struct{}

func (plannerLogAdapter) Debugf(format string, args ...interface{}) {
	log.Debug(fmt.Sprintf(format, args...))
}

func main() {
	kong.Parse(&CLI)

	log.SetLevel(log.InfoLevel)
	if CLI.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var reg *prometheus.Registry
	var plannerMetrics *metrics.PlannerMetrics
	if CLI.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		plannerMetrics = metrics.New(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler(reg))
			log.Info("serving metrics", "addr", CLI.MetricsAddr)
			if err := http.ListenAndServe(CLI.MetricsAddr, mux); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	sc, err := scenario.Load(CLI.Scenario)
	if err != nil {
		log.Fatal("failed to load scenario", "path", CLI.Scenario, "error", err)
	}

	p, err := sc.NewPlanner(dstarlite.WithLogger(plannerLogAdapter{}))
	if err != nil {
		log.Fatal("failed to construct planner", "error", err)
	}
	if plannerMetrics != nil {
		plannerMetrics.Observe(p)
	}

	log.Info("initial path", "path", fmt.Sprint(p.Path()))

	for i, step := range sc.Script {
		outcome := scenario.Apply(p, step)
		if plannerMetrics != nil {
			plannerMetrics.Observe(p)
		}

		if !outcome.Applied {
			log.Warn("script step was a no-op", "index", i, "op", outcome.Op, "cell", outcome.Cell)
		} else {
			log.Info("applied script step", "index", i, "op", outcome.Op, "cell", outcome.Cell)
		}
		log.Info("path", "path", fmt.Sprint(p.Path()))
	}
}
