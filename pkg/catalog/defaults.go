package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveID turns a display name into an id: lowercased, spaces replaced
// with hyphens.
func DeriveID(name string) string {
	return strings.ReplaceAll(cases.Lower(language.Und).String(name), " ", "-")
}

// FillDefaults completes a parsed instrument: it guarantees one channel,
// backfills name and description from the first long name and derives a
// missing id from the name.
func FillDefaults(in *Instrument) {
	if len(in.Channels) == 0 {
		in.Channels = append(in.Channels, DefaultChannel())
	}
	if in.Name == "" && len(in.LongNames) > 0 {
		in.Name = in.LongNames[0].Name
	}
	if in.Description == "" && len(in.LongNames) > 0 {
		in.Description = in.LongNames[0].Name
	}
	if in.ID == "" {
		in.ID = DeriveID(in.Name)
	}
}
