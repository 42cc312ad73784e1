package stats

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const _namespace = "ensemble"

// Registry returns a registry holding gauges for every source in r.
func (r Report) Registry() *prometheus.Registry {
	templates := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: _namespace,
		Subsystem: "catalog",
		Name:      "templates",
		Help:      "Instrument templates per group.",
	}, []string{"source", "group"})
	extended := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: _namespace,
		Subsystem: "catalog",
		Name:      "templates_extended",
		Help:      "Instrument templates marked extended per group.",
	}, []string{"source", "group"})
	orders := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: _namespace,
		Subsystem: "catalog",
		Name:      "score_orders",
		Help:      "Score orders defined per source.",
	}, []string{"source"})
	articulations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: _namespace,
		Subsystem: "catalog",
		Name:      "articulations",
		Help:      "Articulations defined per source.",
	}, []string{"source"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(templates, extended, orders, articulations)

	for _, s := range r.Sources {
		for _, g := range s.Groups {
			templates.WithLabelValues(s.Name, g.GroupID).Set(float64(g.Templates))
			extended.WithLabelValues(s.Name, g.GroupID).Set(float64(g.Extended))
		}
		orders.WithLabelValues(s.Name).Set(float64(s.Orders))
		articulations.WithLabelValues(s.Name).Set(float64(s.Articulations))
	}
	return reg
}

// WriteTextfile writes the gauges of r to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string, r Report) error {
	if err := prometheus.WriteToTextfile(path, r.Registry()); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
