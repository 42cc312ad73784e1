package parser

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndisidore/ensemble/pkg/catalog"
	"github.com/ndisidore/ensemble/pkg/notation"
)

// parseBody parses body wrapped in the document root element.
func parseBody(t *testing.T, body string) *catalog.Catalog {
	t.Helper()
	return New().ParseString("<museScore>" + body + "</museScore>")
}

func mustTemplate(t *testing.T, cat *catalog.Catalog, id string) catalog.Instrument {
	t.Helper()
	tmpl, err := cat.Template(id)
	require.NoError(t, err)
	return tmpl.Instrument
}

func TestParseViolin(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="strings">
			<name>Strings</name>
			<Instrument id="violin">
				<longName>Violin</longName>
				<shortName>Vln.</shortName>
				<staves>1</staves>
				<clef>G</clef>
				<aPitchRange>55-88</aPitchRange>
				<pPitchRange>55-103</pPitchRange>
				<genre>classical</genre>
				<family>violins</family>
			</Instrument>
		</InstrumentGroup>`)

	require.Equal(t, 1, cat.Groups.Len())
	g, err := cat.Group("strings")
	require.NoError(t, err)
	assert.Equal(t, "Strings", g.Name)
	assert.Equal(t, 0, g.SequenceOrder)

	in := mustTemplate(t, cat, "violin")
	assert.Equal(t, "violin", in.ID)
	assert.Equal(t, "strings", in.GroupID)
	assert.Equal(t, 0, in.SequenceOrder)
	assert.Equal(t, []catalog.StaffName{{Name: "Violin", Pos: 0}}, in.LongNames)
	assert.Equal(t, []catalog.StaffName{{Name: "Vln.", Pos: 0}}, in.ShortNames)
	assert.Equal(t, "Violin", in.Name)
	assert.Equal(t, "Violin", in.Description)
	assert.Equal(t, 1, in.Staves)
	assert.Equal(t, notation.ClefPair{Concert: notation.ClefG, Transposing: notation.ClefG}, in.Clefs[0])
	assert.Equal(t, catalog.PitchRange{Min: 55, Max: 88}, in.AmateurPitchRange)
	assert.Equal(t, catalog.PitchRange{Min: 55, Max: 103}, in.ProfessionalPitchRange)
	assert.Equal(t, []string{"classical"}, in.GenreIDs)
	assert.Equal(t, "violins", in.FamilyID)
	assert.Equal(t, []catalog.Channel{catalog.DefaultChannel()}, in.Channels)
	assert.Equal(t, 5, in.StaffLines[0])
	assert.Equal(t, notation.BracketNone, in.Bracket[0])
}

func TestInitOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, in catalog.Instrument)
	}{
		{
			name: "fields after init override",
			body: `<init>violin</init><staves>2</staves><longName>Viola</longName>`,
			check: func(t *testing.T, in catalog.Instrument) {
				t.Helper()
				assert.Equal(t, 2, in.Staves)
				assert.Equal(t, []catalog.StaffName{
					{Name: "Vln.", Pos: 0},
				}, in.ShortNames)
				assert.Equal(t, "Viola", in.LongName())
				assert.Equal(t, notation.ClefF, in.Clefs[0].Concert)
			},
		},
		{
			name: "fields before init are discarded",
			body: `<staves>3</staves><clef>C3</clef><init>violin</init>`,
			check: func(t *testing.T, in catalog.Instrument) {
				t.Helper()
				assert.Equal(t, 1, in.Staves)
				assert.Equal(t, notation.ClefF, in.Clefs[0].Concert)
				assert.Equal(t, "Violin", in.LongName())
			},
		},
		{
			name: "init keeps display metadata",
			body: `<trackName>Fiddle</trackName><init>violin</init>`,
			check: func(t *testing.T, in catalog.Instrument) {
				t.Helper()
				assert.Equal(t, "Fiddle", in.Name)
				assert.Empty(t, in.GenreIDs)
				assert.Empty(t, in.FamilyID)
				assert.Equal(t, "two", in.GroupID)
				assert.Equal(t, 1, in.SequenceOrder)
			},
		},
		{
			name: "init copies the source id into the instrument",
			body: `<init>violin</init>`,
			check: func(t *testing.T, in catalog.Instrument) {
				t.Helper()
				assert.Equal(t, "violin", in.ID)
				assert.Equal(t, "orchestra.violin", in.MusicXMLID)
			},
		},
		{
			name: "unknown init copies defaults",
			body: `<staves>3</staves><init>missing</init>`,
			check: func(t *testing.T, in catalog.Instrument) {
				t.Helper()
				assert.Equal(t, 1, in.Staves)
				assert.Empty(t, in.LongNames)
				assert.Equal(t, catalog.FullRange(), in.AmateurPitchRange)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat := parseBody(t, `
				<InstrumentGroup id="one">
					<Instrument id="violin">
						<longName>Violin</longName>
						<shortName>Vln.</shortName>
						<clef>F</clef>
						<musicXMLid>orchestra.violin</musicXMLid>
						<genre>classical</genre>
						<family>violins</family>
					</Instrument>
				</InstrumentGroup>
				<InstrumentGroup id="two">
					<Instrument id="derived">`+tt.body+`</Instrument>
				</InstrumentGroup>`)
			tt.check(t, mustTemplate(t, cat, "derived"))
		})
	}
}

func TestInitDoesNotAliasSource(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="perc">
			<Instrument id="kit">
				<useDrumset>1</useDrumset>
				<Channel><program value="0"/></Channel>
			</Instrument>
			<Instrument id="copy">
				<init>kit</init>
				<Drum pitch="36"><name>Kick</name></Drum>
			</Instrument>
		</InstrumentGroup>`)

	src := mustTemplate(t, cat, "kit")
	cp := mustTemplate(t, cat, "copy")
	require.NotNil(t, src.Drumset)
	require.NotNil(t, cp.Drumset)
	assert.Equal(t, []int{36}, cp.Drumset.Pitches())
	assert.Greater(t, len(src.Drumset.Pitches()), 1, "source kit must be untouched")
	assert.NotSame(t, src.Drumset, cp.Drumset)
}

func TestInitWithoutIDKeepsSource(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="strings">
			<Instrument id="violin">
				<longName>Violin</longName>
				<staves>1</staves>
			</Instrument>
			<Instrument>
				<init>violin</init>
				<staves>2</staves>
			</Instrument>
			<Instrument id="viola">
				<init>violin</init>
			</Instrument>
		</InstrumentGroup>`)

	violin := mustTemplate(t, cat, "violin")
	assert.Equal(t, 1, violin.Staves)
	assert.Equal(t, 0, violin.SequenceOrder)

	derived := mustTemplate(t, cat, "")
	assert.Equal(t, 2, derived.Staves)
	assert.Equal(t, "violin", derived.ID)

	assert.Equal(t, 1, mustTemplate(t, cat, "viola").Staves)
	assert.Equal(t, []string{"violin", "", "viola"}, cat.Templates.Keys())
}

func TestScoreOrder(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<Order id="orchestral">
			<name>Orchestral</name>
			<instrument id="wagner-tuba">
				<family id="horns">Horns</family>
			</instrument>
			<section id="woodwinds">
				<family>flutes</family>
				<family showSystemMarkings="true" barLineSpan="false" thinBrackets="false">oboes</family>
				<unsorted group="woodwinds"/>
			</section>
			<soloists/>
			<family>keyboards</family>
			<unsorted/>
		</Order>
		<Order id="custom"><name>Custom</name></Order>`)

	require.Equal(t, []string{"orchestral", "custom"}, cat.Orders.Keys())
	o, err := cat.Order("orchestral")
	require.NoError(t, err)
	assert.Equal(t, 0, o.Index)
	assert.Equal(t, "Orchestral", o.Name)
	assert.Equal(t, catalog.InstrumentOverwrite{FamilyID: "horns", Name: "Horns"}, o.InstrumentMap["wagner-tuba"])

	want := []catalog.ScoreOrderGroup{
		{Index: 0, Family: "flutes", Section: "woodwinds", Bracket: true, ShowSystemMarkings: false, BarLineSpan: true, ThinBracket: true},
		{Index: 1, Family: "oboes", Section: "woodwinds", Bracket: true, ShowSystemMarkings: true, BarLineSpan: false, ThinBracket: false},
		{Index: 2, Family: catalog.UnsortedFamily, Section: "woodwinds", Unsorted: "woodwinds"},
		{Index: 3, Family: catalog.SoloistsFamily},
		{Index: 4, Family: "keyboards"},
		{Index: 5, Family: catalog.UnsortedFamily},
	}
	assert.Equal(t, want, o.Groups)
	for i, g := range o.Groups {
		assert.Equal(t, i, g.Index)
	}

	custom, err := cat.Order("custom")
	require.NoError(t, err)
	assert.Equal(t, 1, custom.Index)
	assert.Empty(t, custom.Groups)
}

func TestDerivedGroupID(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup>
			<name>Wood Winds</name>
			<Instrument id="flute"><longName>Flute</longName></Instrument>
		</InstrumentGroup>`)

	g, err := cat.Group("wood-winds")
	require.NoError(t, err)
	assert.Equal(t, "Wood Winds", g.Name)
	assert.Equal(t, "wood-winds", mustTemplate(t, cat, "flute").GroupID)
}

func TestSequenceOrders(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="a" extended="1">
			<Instrument id="x"/>
			<Instrument id="y"/>
		</InstrumentGroup>
		<InstrumentGroup id="b">
			<extended>0</extended>
			<Instrument id="x"/>
			<Instrument id="z"/>
		</InstrumentGroup>`)

	a, err := cat.Group("a")
	require.NoError(t, err)
	b, err := cat.Group("b")
	require.NoError(t, err)
	assert.Equal(t, 0, a.SequenceOrder)
	assert.Equal(t, 1, b.SequenceOrder)
	assert.True(t, a.Extended)
	assert.False(t, b.Extended)

	// Redefinition replaces the template but keeps its first position.
	assert.Equal(t, []string{"x", "y", "z"}, cat.Templates.Keys())
	x := mustTemplate(t, cat, "x")
	assert.Equal(t, 2, x.SequenceOrder)
	assert.Equal(t, "b", x.GroupID)
	assert.Equal(t, 1, mustTemplate(t, cat, "y").SequenceOrder)
	assert.Equal(t, 3, mustTemplate(t, cat, "z").SequenceOrder)
}

func TestRef(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="a">
			<Instrument id="piano"><longName>Piano</longName></Instrument>
		</InstrumentGroup>
		<InstrumentGroup id="b">
			<ref>piano</ref>
			<ref>nothing</ref>
		</InstrumentGroup>`)

	assert.Equal(t, []string{"piano"}, cat.Templates.Keys())
	assert.False(t, cat.Templates.Has(""))
	assert.Equal(t, "a", mustTemplate(t, cat, "piano").GroupID)
}

func TestNamesAtPosition(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="g">
			<Instrument id="clarinet">
				<longName>Clarinet</longName>
				<longName pos="1">in B♭</longName>
				<longName>Clarinet in Bb</longName>
				<short-name pos="1">B♭</short-name>
			</Instrument>
		</InstrumentGroup>`)

	in := mustTemplate(t, cat, "clarinet")
	assert.Equal(t, []catalog.StaffName{
		{Name: "in B♭", Pos: 1},
		{Name: "Clarinet in Bb", Pos: 0},
	}, in.LongNames)
	assert.Equal(t, []catalog.StaffName{{Name: "B♭", Pos: 1}}, in.ShortNames)
	// The first entry backfills the display name.
	assert.Equal(t, "in B♭", in.Name)
}

func TestStaffFields(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="keys">
			<Instrument id="piano">
				<staves>2</staves>
				<clef staff="1">G</clef>
				<clef staff="2">F</clef>
				<concertClef staff="9">C3</concertClef>
				<transposingClef staff="9">20</transposingClef>
				<stafflines staff="0">4</stafflines>
				<smallStaff staff="2">1</smallStaff>
				<bracket>1</bracket>
				<barlineSpan>2</barlineSpan>
			</Instrument>
		</InstrumentGroup>`)

	in := mustTemplate(t, cat, "piano")
	assert.Equal(t, 2, in.Staves)
	assert.Equal(t, 2, in.BracketSpan[0])
	assert.Equal(t, notation.ClefG, in.Clefs[0].Concert)
	assert.Equal(t, notation.ClefF, in.Clefs[1].Concert)
	assert.Equal(t, notation.ClefF, in.Clefs[1].Transposing)
	assert.Equal(t, notation.ClefC3, in.Clefs[catalog.MaxStaves-1].Concert)
	assert.Equal(t, notation.ClefF, in.Clefs[catalog.MaxStaves-1].Transposing)
	assert.Equal(t, 4, in.StaffLines[0])
	assert.True(t, in.SmallStaff[1])
	assert.False(t, in.SmallStaff[0])
	assert.Equal(t, notation.BracketBrace, in.Bracket[0])
	assert.Equal(t, [catalog.MaxStaves]bool{true, false, false, false}, in.BarlineSpan)
}

func TestUnknownClefFallsBack(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `<InstrumentGroup id="g"><Instrument id="x"><clef>Q7</clef></Instrument></InstrumentGroup>`)
	assert.Equal(t, notation.ClefG, mustTemplate(t, cat, "x").Clefs[0].Concert)
}

func TestTransposition(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="g">
			<Instrument id="clarinet"><transposition>-2</transposition></Instrument>
			<Instrument id="horn">
				<transposeChromatic>-7</transposeChromatic>
				<transposeDiatonic>-4</transposeDiatonic>
			</Instrument>
			<Instrument id="bass"><transposition>-12</transposition></Instrument>
		</InstrumentGroup>`)

	assert.Equal(t, catalog.Transposition{Chromatic: -2, Diatonic: -1}, mustTemplate(t, cat, "clarinet").Transpose)
	assert.Equal(t, catalog.Transposition{Chromatic: -7, Diatonic: -4}, mustTemplate(t, cat, "horn").Transpose)
	assert.Equal(t, catalog.Transposition{Chromatic: -12, Diatonic: -7}, mustTemplate(t, cat, "bass").Transpose)
}

func TestStaffType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		elem      string
		wantGroup notation.StaffGroup
		wantName  string
		wantLines int
	}{
		{
			name:      "named preset",
			elem:      `<stafftype staffTypePreset="tab4StrCommon">tablature</stafftype>`,
			wantGroup: notation.StaffGroupTab,
			wantName:  "tab4StrCommon",
			wantLines: 4,
		},
		{
			name:      "missing preset uses group default",
			elem:      `<stafftype staffTypePreset="nope">percussion</stafftype>`,
			wantGroup: notation.StaffGroupPercussion,
			wantName:  "perc5Line",
			wantLines: 5,
		},
		{
			name:      "preset of another group uses group default",
			elem:      `<stafftype staffTypePreset="perc1Line">tablature</stafftype>`,
			wantGroup: notation.StaffGroupTab,
			wantName:  "tab6StrCommon",
			wantLines: 6,
		},
		{
			name:      "unknown group text is standard",
			elem:      `<stafftype>pitched</stafftype>`,
			wantGroup: notation.StaffGroupStandard,
			wantName:  "stdNormal",
			wantLines: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat := parseBody(t, `<InstrumentGroup id="g"><Instrument id="x">`+tt.elem+`</Instrument></InstrumentGroup>`)
			in := mustTemplate(t, cat, "x")
			assert.Equal(t, tt.wantGroup, in.StaffGroup)
			require.NotNil(t, in.StaffTypePreset)
			assert.Equal(t, tt.wantName, in.StaffTypePreset.XMLName)
			assert.Equal(t, tt.wantLines, in.StaffLines[0])
		})
	}
}

func TestDrums(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="perc">
			<Instrument id="drumset">
				<useDrumset>1</useDrumset>
			</Instrument>
			<Instrument id="toms">
				<useDrumset>1</useDrumset>
				<Drum pitch="45">
					<head>normal</head>
					<line>3</line>
					<voice>1</voice>
					<name>Low Tom</name>
					<stem>2</stem>
					<shortcut>A</shortcut>
				</Drum>
				<Drum pitch="48"><name>High Tom</name></Drum>
				<Drum pitch="300"><name>Ignored</name></Drum>
			</Instrument>
			<Instrument id="bare">
				<Drum pitch="38"><name>Snare</name></Drum>
			</Instrument>
		</InstrumentGroup>`)

	full := mustTemplate(t, cat, "drumset")
	assert.True(t, full.UseDrumset)
	require.NotNil(t, full.Drumset)
	assert.Equal(t, notation.StandardKit{}.Kit().Pitches(), full.Drumset.Pitches())

	toms := mustTemplate(t, cat, "toms")
	require.NotNil(t, toms.Drumset)
	assert.Equal(t, []int{45, 48}, toms.Drumset.Pitches())
	assert.Equal(t, notation.DrumInstrument{
		Name:     "Low Tom",
		NoteHead: "normal",
		Line:     3,
		Voice:    1,
		Stem:     notation.StemDown,
		Shortcut: "A",
	}, toms.Drumset.Drums[45])

	bare := mustTemplate(t, cat, "bare")
	assert.False(t, bare.UseDrumset)
	require.NotNil(t, bare.Drumset)
	assert.Equal(t, []int{38}, bare.Drumset.Pitches())
}

func TestChannels(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="g">
			<Instrument id="violin">
				<Channel>
					<program value="40"/>
					<controller ctrl="0" value="1"/>
					<controller ctrl="32" value="3"/>
					<controller ctrl="7" value="110"/>
					<controller ctrl="10" value="32"/>
					<controller ctrl="91" value="20"/>
					<controller ctrl="93" value="10"/>
					<synti>Fluid</synti>
					<descr>Arco</descr>
				</Channel>
				<channel name="pizzicato">
					<program value="45"/>
					<MidiAction name="mute"><controller ctrl="64" value="127"/></MidiAction>
				</channel>
				<MidiAction name="reset">
					<program value="40"/>
					<descr>Restore</descr>
				</MidiAction>
			</Instrument>
		</InstrumentGroup>`)

	in := mustTemplate(t, cat, "violin")
	require.Len(t, in.Channels, 2)
	assert.Equal(t, catalog.Channel{
		Name:        catalog.DefaultChannelName,
		Description: "Arco",
		Synti:       "Fluid",
		Program:     40,
		Bank:        1<<7 | 3,
		Volume:      110,
		Pan:         -32,
		Chorus:      10,
		Reverb:      20,
	}, in.Channels[0])

	pizz := in.Channels[1]
	assert.Equal(t, "pizzicato", pizz.Name)
	assert.Equal(t, 45, pizz.Program)
	assert.Equal(t, 100, pizz.Volume)
	require.Len(t, pizz.MidiActions, 1)
	assert.Equal(t, []catalog.Event{{Type: catalog.EventController, Controller: 64, Value: 127}}, pizz.MidiActions[0].Events)

	require.Len(t, in.MidiActions, 1)
	assert.Equal(t, catalog.MidiAction{
		Name:        "reset",
		Description: "Restore",
		Events:      []catalog.Event{{Type: catalog.EventController, Controller: catalog.CtrlProgram, Value: 40}},
	}, in.MidiActions[0])
}

func TestStringData(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="g">
			<Instrument id="guitar">
				<StringData>
					<frets>19</frets>
					<string>40</string>
					<string open="1">45</string>
					<string open="0">50</string>
				</StringData>
			</Instrument>
		</InstrumentGroup>`)

	assert.Equal(t, catalog.StringData{
		Frets: 19,
		Strings: []catalog.InstrString{
			{Pitch: 40},
			{Pitch: 45, Open: true},
			{Pitch: 50},
		},
	}, mustTemplate(t, cat, "guitar").StringData)
}

func TestLeafDefinitions(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<Articulation name="staccato">
			<velocity>100%</velocity>
			<gateTime>50</gateTime>
			<descr>short</descr>
		</Articulation>
		<Genre id="jazz"><name>Jazz</name></Genre>
		<Family id="flutes"><name>Flutes</name><color>blue</color></Family>
		<InstrumentGroup id="g">
			<Instrument id="x">
				<Articulation name="accent"><velocity>120%</velocity></Articulation>
			</Instrument>
		</InstrumentGroup>`)

	st, ok := cat.Articulations.Get("staccato")
	require.True(t, ok)
	assert.Equal(t, catalog.Articulation{Name: "staccato", Velocity: 100, GateTime: 50, Description: "short"}, st)
	acc, ok := cat.Articulations.Get("accent")
	require.True(t, ok)
	assert.Equal(t, 120, acc.Velocity)

	genre, ok := cat.Genres.Get("jazz")
	require.True(t, ok)
	assert.Equal(t, "Jazz", genre.Name)
	family, ok := cat.Families.Get("flutes")
	require.True(t, ok)
	assert.Equal(t, "Flutes", family.Name)
}

func TestPermissiveInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		templates []string
	}{
		{
			name:      "wrapper nested in another element",
			content:   `<bundle><meta/><museScore><InstrumentGroup id="g"><Instrument id="a"/></InstrumentGroup></museScore></bundle>`,
			templates: []string{"a"},
		},
		{
			name:      "unknown elements are skipped",
			content:   `<museScore><Banner>x</Banner><InstrumentGroup id="g"><Colour/><Instrument id="a"><mood>happy</mood><staves>1</staves></Instrument></InstrumentGroup></museScore>`,
			templates: []string{"a"},
		},
		{
			name:      "lowercase instrument and group alias",
			content:   `<museScore><instrument-group id="g"><instrument id="a"/></instrument-group></museScore>`,
			templates: []string{"a"},
		},
		{
			name:      "truncated document keeps what was read",
			content:   `<museScore><InstrumentGroup id="g"><Instrument id="a"/><Instrument id="b"><staves>`,
			templates: []string{"a", "b"},
		},
		{
			name:    "no wrapper",
			content: `<InstrumentGroup id="g"><Instrument id="a"/></InstrumentGroup>`,
		},
		{
			name:    "empty",
			content: ``,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat := New().ParseString(tt.content)
			require.NotNil(t, cat)
			if tt.templates == nil {
				assert.Zero(t, cat.Templates.Len())
				return
			}
			assert.Equal(t, tt.templates, cat.Templates.Keys())
		})
	}
}

func TestMalformedValues(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="g">
			<Instrument id="x">
				<staves>two</staves>
				<aPitchRange>60</aPitchRange>
				<pPitchRange></pPitchRange>
				<transposition>up</transposition>
				<singleNoteDynamics>1</singleNoteDynamics>
			</Instrument>
		</InstrumentGroup>`)

	in := mustTemplate(t, cat, "x")
	assert.Equal(t, 0, in.Staves)
	assert.Equal(t, catalog.FullRange(), in.AmateurPitchRange)
	assert.Equal(t, catalog.FullRange(), in.ProfessionalPitchRange)
	assert.Equal(t, catalog.Transposition{}, in.Transpose)
	assert.True(t, in.SingleNoteDynamics)
}

func TestIDFromName(t *testing.T) {
	t.Parallel()

	cat := parseBody(t, `
		<InstrumentGroup id="g">
			<Instrument><longName>Alto Saxophone</longName></Instrument>
			<Instrument><trackName>Bass Drum</trackName></Instrument>
		</InstrumentGroup>`)

	assert.Equal(t, []string{"alto-saxophone", "bass-drum"}, cat.Templates.Keys())
	assert.Equal(t, "alto-saxophone", mustTemplate(t, cat, "alto-saxophone").ID)
}

type upperTranslator struct{ contexts []string }

func (u *upperTranslator) Translate(context, text string) string {
	u.contexts = append(u.contexts, context)
	return strings.ToUpper(text)
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	tr := &upperTranslator{}
	p := &Parser{Translator: tr}
	cat := p.ParseString(`<museScore>
		<InstrumentGroup id="g" name="brass">
			<Instrument id="horn"><longName>Horn</longName><description>French horn</description></Instrument>
		</InstrumentGroup>
		<Order id="o"><name>Band</name></Order>
	</museScore>`)

	g, err := cat.Group("g")
	require.NoError(t, err)
	assert.Equal(t, "BRASS", g.Name)
	in := mustTemplate(t, cat, "horn")
	assert.Equal(t, "HORN", in.LongName())
	assert.Equal(t, "FRENCH HORN", in.Description)
	o, err := cat.Order("o")
	require.NoError(t, err)
	assert.Equal(t, "BAND", o.Name)
	assert.Contains(t, tr.contexts, ContextInstruments)
	assert.Contains(t, tr.contexts, ContextOrders)
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	content := `<museScore><InstrumentGroup id="g"><Instrument id="a"/></InstrumentGroup></museScore>`
	fsys := fstest.MapFS{
		"catalogs/instruments.xml": &fstest.MapFile{Data: []byte(content)},
	}
	p := &Parser{Resolver: &FSResolver{FS: fsys}}

	t.Run("resolves", func(t *testing.T) {
		t.Parallel()
		cat, err := p.ParseFile("catalogs/instruments.xml")
		require.NoError(t, err)
		assert.Equal(t, "catalogs/instruments.xml", cat.Source.Name)
		assert.Equal(t, digest.FromString(content), cat.Source.Digest)
		assert.True(t, cat.Templates.Has("a"))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseFile("catalogs/missing.xml")
		require.ErrorIs(t, err, ErrSource)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("reader", func(t *testing.T) {
		t.Parallel()
		cat, err := New().Parse(strings.NewReader(`<museScore><Genre id="pop"/></museScore>`), "genres.xml")
		require.NoError(t, err)
		assert.Equal(t, "genres.xml", cat.Source.Name)
		assert.True(t, cat.Genres.Has("pop"))
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()
		_, err := New().Parse(failingReader{}, "broken.xml")
		require.ErrorIs(t, err, ErrSource)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestLoggerReceivesSkips(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &Parser{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	p.ParseString(`<museScore><Mystery/></museScore>`)

	assert.Contains(t, buf.String(), "skipping element")
	assert.Contains(t, buf.String(), "element=Mystery")
}
