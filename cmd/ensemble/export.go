package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/containerd/errdefs"
	"gopkg.in/yaml.v3"

	"github.com/ndisidore/ensemble/pkg/catalog"
)

// Export encodings.
const (
	encodingJSON = "json"
	encodingYAML = "yaml"
)

// exportCatalog is the serialized form of a catalog.
type exportCatalog struct {
	Source        string               `json:"source" yaml:"source"`
	Digest        string               `json:"digest" yaml:"digest"`
	Groups        []exportGroup        `json:"groups" yaml:"groups"`
	Genres        []exportNamed        `json:"genres,omitempty" yaml:"genres,omitempty"`
	Families      []exportNamed        `json:"families,omitempty" yaml:"families,omitempty"`
	Articulations []exportArticulation `json:"articulations,omitempty" yaml:"articulations,omitempty"`
	Orders        []exportOrder        `json:"orders,omitempty" yaml:"orders,omitempty"`
}

type exportGroup struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Extended  bool             `json:"extended,omitempty" yaml:"extended,omitempty"`
	Templates []exportTemplate `json:"templates" yaml:"templates"`
}

type exportTemplate struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	MusicXMLID  string          `json:"musicXmlId,omitempty" yaml:"musicXmlId,omitempty"`
	LongNames   []exportName    `json:"longNames,omitempty" yaml:"longNames,omitempty"`
	ShortNames  []exportName    `json:"shortNames,omitempty" yaml:"shortNames,omitempty"`
	Staves      int             `json:"staves" yaml:"staves"`
	Clefs       []string        `json:"clefs" yaml:"clefs"`
	Amateur     string          `json:"amateurRange" yaml:"amateurRange"`
	Pro         string          `json:"professionalRange" yaml:"professionalRange"`
	Transpose   *exportInterval `json:"transpose,omitempty" yaml:"transpose,omitempty"`
	StaffType   string          `json:"staffType,omitempty" yaml:"staffType,omitempty"`
	Drums       []int           `json:"drums,omitempty" yaml:"drums,omitempty"`
	Family      string          `json:"family,omitempty" yaml:"family,omitempty"`
	Genres      []string        `json:"genres,omitempty" yaml:"genres,omitempty"`
	Extended    bool            `json:"extended,omitempty" yaml:"extended,omitempty"`
	Channels    []exportChannel `json:"channels" yaml:"channels"`
}

type exportName struct {
	Name string `json:"name" yaml:"name"`
	Pos  int    `json:"pos" yaml:"pos"`
}

type exportInterval struct {
	Chromatic int `json:"chromatic" yaml:"chromatic"`
	Diatonic  int `json:"diatonic" yaml:"diatonic"`
}

type exportChannel struct {
	Name    string `json:"name" yaml:"name"`
	Program int    `json:"program" yaml:"program"`
	Bank    int    `json:"bank" yaml:"bank"`
	Volume  int    `json:"volume" yaml:"volume"`
	Pan     int    `json:"pan" yaml:"pan"`
}

type exportNamed struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type exportArticulation struct {
	Name     string `json:"name" yaml:"name"`
	Velocity int    `json:"velocity" yaml:"velocity"`
	GateTime int    `json:"gateTime" yaml:"gateTime"`
}

type exportOrder struct {
	ID     string             `json:"id" yaml:"id"`
	Name   string             `json:"name" yaml:"name"`
	Groups []exportOrderGroup `json:"groups" yaml:"groups"`
}

type exportOrderGroup struct {
	Family   string `json:"family" yaml:"family"`
	Section  string `json:"section,omitempty" yaml:"section,omitempty"`
	Unsorted string `json:"unsorted,omitempty" yaml:"unsorted,omitempty"`
	Bracket  bool   `json:"bracket,omitempty" yaml:"bracket,omitempty"`
}

func newExportCatalog(cat *catalog.Catalog) exportCatalog {
	out := exportCatalog{
		Source: cat.Source.Name,
		Digest: cat.Source.Digest.String(),
		Groups: make([]exportGroup, 0, cat.Groups.Len()),
	}
	for _, g := range cat.SortedGroups() {
		eg := exportGroup{ID: g.ID, Name: g.Name, Extended: g.Extended, Templates: []exportTemplate{}}
		for _, t := range cat.GroupTemplates(g.ID) {
			eg.Templates = append(eg.Templates, newExportTemplate(t))
		}
		out.Groups = append(out.Groups, eg)
	}
	for _, g := range cat.Genres.Values() {
		out.Genres = append(out.Genres, exportNamed{ID: g.ID, Name: g.Name})
	}
	for _, f := range cat.Families.Values() {
		out.Families = append(out.Families, exportNamed{ID: f.ID, Name: f.Name})
	}
	for _, a := range cat.Articulations.Values() {
		out.Articulations = append(out.Articulations, exportArticulation{Name: a.Name, Velocity: a.Velocity, GateTime: a.GateTime})
	}
	for _, o := range cat.Orders.Values() {
		eo := exportOrder{ID: o.ID, Name: o.Name, Groups: make([]exportOrderGroup, 0, len(o.Groups))}
		for _, g := range o.Groups {
			eo.Groups = append(eo.Groups, exportOrderGroup{
				Family:   g.Family,
				Section:  g.Section,
				Unsorted: g.Unsorted,
				Bracket:  g.Bracket,
			})
		}
		out.Orders = append(out.Orders, eo)
	}
	return out
}

func newExportTemplate(t catalog.InstrumentTemplate) exportTemplate {
	in := &t.Instrument
	et := exportTemplate{
		ID:          t.ID,
		Name:        in.Name,
		Description: in.Description,
		MusicXMLID:  in.MusicXMLID,
		Staves:      in.Staves,
		Amateur:     fmt.Sprintf("%d-%d", in.AmateurPitchRange.Min, in.AmateurPitchRange.Max),
		Pro:         fmt.Sprintf("%d-%d", in.ProfessionalPitchRange.Min, in.ProfessionalPitchRange.Max),
		Family:      in.FamilyID,
		Genres:      in.GenreIDs,
		Extended:    in.Extended,
	}
	for _, n := range in.LongNames {
		et.LongNames = append(et.LongNames, exportName(n))
	}
	for _, n := range in.ShortNames {
		et.ShortNames = append(et.ShortNames, exportName(n))
	}
	for i := range max(1, min(in.Staves, catalog.MaxStaves)) {
		et.Clefs = append(et.Clefs, in.Clefs[i].Concert.String())
	}
	if in.Transpose != (catalog.Transposition{}) {
		et.Transpose = &exportInterval{Chromatic: in.Transpose.Chromatic, Diatonic: in.Transpose.Diatonic}
	}
	if in.StaffTypePreset != nil {
		et.StaffType = in.StaffTypePreset.XMLName
	}
	if in.Drumset != nil {
		et.Drums = in.Drumset.Pitches()
	}
	for _, ch := range in.Channels {
		et.Channels = append(et.Channels, exportChannel{
			Name:    ch.Name,
			Program: ch.Program,
			Bank:    ch.Bank,
			Volume:  ch.Volume,
			Pan:     ch.Pan,
		})
	}
	return et
}

// encodeCatalog writes c to w in the named encoding.
func encodeCatalog(w io.Writer, encoding string, c exportCatalog) error {
	switch encoding {
	case encodingJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case encodingYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown encoding %q: %w", encoding, errdefs.ErrInvalidArgument)
	}
	return nil
}
