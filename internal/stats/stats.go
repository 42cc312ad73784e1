// Package stats summarizes parsed catalogs for reporting and metrics export.
package stats

import (
	"fmt"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"

	"github.com/ndisidore/ensemble/pkg/catalog"
)

// GroupReport summarizes the templates of one instrument group.
type GroupReport struct {
	GroupID     string
	Name        string
	Templates   int
	Extended    int
	Transposing int
	Percussion  int
}

// SourceReport summarizes one parsed catalog.
type SourceReport struct {
	Name          string
	Digest        digest.Digest
	Groups        []GroupReport
	Orders        int
	Articulations int
	Genres        int
	Families      int
}

// Templates returns the number of templates across all groups.
func (s SourceReport) Templates() int {
	var n int
	for i := range s.Groups {
		n += s.Groups[i].Templates
	}
	return n
}

// Report aggregates statistics across catalogs.
type Report struct {
	Sources []SourceReport
}

// ExtendedRate returns the share of templates marked extended (0.0-1.0).
// Returns 0 when there are no templates.
func (r Report) ExtendedRate() float64 {
	var total, extended int
	for _, s := range r.Sources {
		for i := range s.Groups {
			total += s.Groups[i].Templates
			extended += s.Groups[i].Extended
		}
	}
	if total == 0 {
		return 0
	}
	return float64(extended) / float64(total)
}

// Collector accumulates catalog statistics. It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	sources []SourceReport
	seen    map[digest.Digest]struct{}
}

// NewCollector returns a new Collector ready for use.
func NewCollector() *Collector {
	return &Collector{seen: make(map[digest.Digest]struct{})}
}

// Observe records the statistics of cat. Catalogs are deduplicated by
// content digest, so the same document listed twice is counted once.
func (c *Collector) Observe(cat *catalog.Catalog) {
	if cat == nil {
		return
	}
	sr := summarize(cat)

	c.mu.Lock()
	defer c.mu.Unlock()
	if sr.Digest != "" {
		if _, dup := c.seen[sr.Digest]; dup {
			return
		}
		c.seen[sr.Digest] = struct{}{}
	}
	c.sources = append(c.sources, sr)
}

// Report returns the collected statistics in observation order.
func (c *Collector) Report() Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := Report{Sources: make([]SourceReport, len(c.sources))}
	for i, s := range c.sources {
		s.Groups = append([]GroupReport(nil), s.Groups...)
		r.Sources[i] = s
	}
	return r
}

func summarize(cat *catalog.Catalog) SourceReport {
	sr := SourceReport{
		Name:          cat.Source.Name,
		Digest:        cat.Source.Digest,
		Orders:        cat.Orders.Len(),
		Articulations: cat.Articulations.Len(),
		Genres:        cat.Genres.Len(),
		Families:      cat.Families.Len(),
	}
	for _, g := range cat.SortedGroups() {
		gr := GroupReport{GroupID: g.ID, Name: g.Name}
		for _, t := range cat.GroupTemplates(g.ID) {
			in := &t.Instrument
			gr.Templates++
			if in.Extended {
				gr.Extended++
			}
			if in.Transpose.Chromatic != 0 {
				gr.Transposing++
			}
			if in.UseDrumset || in.Drumset != nil {
				gr.Percussion++
			}
		}
		sr.Groups = append(sr.Groups, gr)
	}
	return sr
}

// PrintReport writes a human-readable catalog summary to w.
func PrintReport(w io.Writer, r Report) {
	_, _ = fmt.Fprintln(w, "Catalog summary:")
	var total int
	for _, s := range r.Sources {
		_, _ = fmt.Fprintf(w, "  %s (%s)\n", s.Name, shortDigest(s.Digest))
		for _, g := range s.Groups {
			_, _ = fmt.Fprintf(w, "    %-20s %3d templates  %3d extended  %3d transposing  %3d percussion\n",
				g.GroupID, g.Templates, g.Extended, g.Transposing, g.Percussion)
		}
		_, _ = fmt.Fprintf(w, "    orders: %d  articulations: %d  genres: %d  families: %d\n",
			s.Orders, s.Articulations, s.Genres, s.Families)
		total += s.Templates()
	}
	_, _ = fmt.Fprintf(w, "  Overall: %d templates (%4.1f%% extended)\n", total, r.ExtendedRate()*100)
}

// shortDigest abbreviates d for display.
func shortDigest(d digest.Digest) string {
	if d.Validate() != nil {
		return "unknown"
	}
	enc := d.Encoded()
	return enc[:min(12, len(enc))]
}
