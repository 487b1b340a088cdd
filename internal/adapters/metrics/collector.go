// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

const namespace = "buck"

var _ ports.Metrics = (*Collector)(nil)

// Collector records resolution-core metrics in its own registry.
type Collector struct {
	registry *prometheus.Registry

	cellsLoaded       prometheus.Counter
	ruleTypeBuilds    *prometheus.CounterVec
	ruleTypeDuration  prometheus.Histogram
	parsersCreated    *prometheus.CounterVec
	buildFilesParsed  *prometheus.CounterVec
	buildFileDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector. If registry is nil a fresh registry is used.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		cellsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_loaded_total",
			Help:      "Number of cells constructed by cell providers.",
		}),
		ruleTypeBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_type_registry_builds_total",
			Help:      "Number of rule-type registry constructions by outcome.",
		}, []string{"outcome"}),
		ruleTypeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rule_type_registry_build_seconds",
			Help:      "Time spent constructing rule-type registries.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		parsersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parsers_created_total",
			Help:      "Number of build-file parsers created by mode.",
		}, []string{"mode"}),
		buildFilesParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_files_parsed_total",
			Help:      "Number of build files parsed by syntax.",
		}, []string{"syntax"}),
		buildFileDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_file_parse_seconds",
			Help:      "Time spent parsing one build file.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"syntax"}),
	}

	registry.MustRegister(
		c.cellsLoaded,
		c.ruleTypeBuilds,
		c.ruleTypeDuration,
		c.parsersCreated,
		c.buildFilesParsed,
		c.buildFileDuration,
	)
	return c
}

// Registry returns the registry the collectors are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CellLoaded counts one constructed cell.
func (c *Collector) CellLoaded() {
	c.cellsLoaded.Inc()
}

// RuleTypesBuilt records one registry construction.
func (c *Collector) RuleTypesBuilt(ok bool, seconds float64) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	c.ruleTypeBuilds.WithLabelValues(outcome).Inc()
	c.ruleTypeDuration.Observe(seconds)
}

// ParserCreated counts one parser request.
func (c *Collector) ParserCreated(mode string) {
	c.parsersCreated.WithLabelValues(mode).Inc()
}

// BuildFileParsed records one parsed build file.
func (c *Collector) BuildFileParsed(syntax string, seconds float64) {
	c.buildFilesParsed.WithLabelValues(syntax).Inc()
	c.buildFileDuration.WithLabelValues(syntax).Observe(seconds)
}

// Counters returns the current value of every counter series, keyed by metric
// name and label values, e.g. "buck_parsers_created_total{polyglot}".
func (c *Collector) Counters() (map[string]float64, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			key := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				key += "{"
				for i, l := range labels {
					if i > 0 {
						key += ","
					}
					key += l.GetValue()
				}
				key += "}"
			}
			out[key] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}
