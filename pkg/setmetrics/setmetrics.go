// Package setmetrics exports hashset statistics as Prometheus gauges.
package setmetrics

import (
	"fmt"

	"github.com/graph-guard/hashset/pkg/hashset"
	prom "github.com/prometheus/client_golang/prometheus"
)

// StatsSource is implemented by *hashset.Set.
type StatsSource interface{ Stats() hashset.Stats }

// Collector is a prom.Collector reading the statistics
// of a set on every collection.
type Collector struct {
	src          StatsSource
	entries      *prom.Desc
	capacity     *prom.Desc
	usedSlots    *prom.Desc
	longestChain *prom.Desc
	loadFactor   *prom.Desc
}

var _ prom.Collector = (*Collector)(nil)

// New creates a collector for src with all metric names
// prefixed by namespace.
func New(namespace string, src StatsSource) *Collector {
	d := func(name, help string) *prom.Desc {
		return prom.NewDesc(prom.BuildFQName(namespace, "", name), help, nil, nil)
	}
	return &Collector{
		src:          src,
		entries:      d("entries", "Number of live entries."),
		capacity:     d("capacity", "Number of slots."),
		usedSlots:    d("used_slots", "Number of non-empty slots."),
		longestChain: d("longest_chain", "Length of the longest bucket chain."),
		loadFactor:   d("load_factor", "Ratio of live entries to slots."),
	}
}

func (c *Collector) Describe(ch chan<- *prom.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.usedSlots
	ch <- c.longestChain
	ch <- c.loadFactor
}

func (c *Collector) Collect(ch chan<- prom.Metric) {
	s := c.src.Stats()
	for _, m := range [...]struct {
		desc  *prom.Desc
		value float64
	}{
		{c.entries, float64(s.Len)},
		{c.capacity, float64(s.Capacity)},
		{c.usedSlots, float64(s.UsedSlots)},
		{c.longestChain, float64(s.LongestChain)},
		{c.loadFactor, s.LoadFactor},
	} {
		ch <- prom.MustNewConstMetric(m.desc, prom.GaugeValue, m.value)
	}
}

// WriteTextfile writes the metrics of c to path in the Prometheus
// text exposition format.
func WriteTextfile(path string, c prom.Collector) error {
	reg := prom.NewRegistry()
	if err := reg.Register(c); err != nil {
		return fmt.Errorf("registering collector: %w", err)
	}
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
