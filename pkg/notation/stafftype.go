package notation

// StaffGroup classifies a staff by the kind of notation it carries.
type StaffGroup int

// Staff groups.
const (
	StaffGroupStandard StaffGroup = iota
	StaffGroupPercussion
	StaffGroupTab
)

// String returns the document spelling of the group.
func (g StaffGroup) String() string {
	switch g {
	case StaffGroupPercussion:
		return "percussion"
	case StaffGroupTab:
		return "tablature"
	default:
		return "standard"
	}
}

// StaffGroupFromText maps the text of a stafftype element to a group.
// Anything other than "percussion" or "tablature" is standard.
func StaffGroupFromText(s string) StaffGroup {
	switch s {
	case "percussion":
		return StaffGroupPercussion
	case "tablature":
		return StaffGroupTab
	default:
		return StaffGroupStandard
	}
}

// StaffType is a named staff-type preset.
type StaffType struct {
	XMLName string
	Name    string
	Group   StaffGroup
	Lines   int
}

var _presets = []StaffType{
	{XMLName: "stdNormal", Name: "Standard", Group: StaffGroupStandard, Lines: 5},
	{XMLName: "perc1Line", Name: "Perc. 1 line", Group: StaffGroupPercussion, Lines: 1},
	{XMLName: "perc3Line", Name: "Perc. 3 lines", Group: StaffGroupPercussion, Lines: 3},
	{XMLName: "perc5Line", Name: "Perc. 5 lines", Group: StaffGroupPercussion, Lines: 5},
	{XMLName: "tab6StrSimple", Name: "Tab. 6-str. simple", Group: StaffGroupTab, Lines: 6},
	{XMLName: "tab6StrCommon", Name: "Tab. 6-str. common", Group: StaffGroupTab, Lines: 6},
	{XMLName: "tab6StrFull", Name: "Tab. 6-str. full", Group: StaffGroupTab, Lines: 6},
	{XMLName: "tab4StrSimple", Name: "Tab. 4-str. simple", Group: StaffGroupTab, Lines: 4},
	{XMLName: "tab4StrCommon", Name: "Tab. 4-str. common", Group: StaffGroupTab, Lines: 4},
	{XMLName: "tab4StrFull", Name: "Tab. 4-str. full", Group: StaffGroupTab, Lines: 4},
	{XMLName: "tab5StrSimple", Name: "Tab. 5-str. simple", Group: StaffGroupTab, Lines: 5},
	{XMLName: "tab5StrCommon", Name: "Tab. 5-str. common", Group: StaffGroupTab, Lines: 5},
	{XMLName: "tab5StrFull", Name: "Tab. 5-str. full", Group: StaffGroupTab, Lines: 5},
	{XMLName: "tabUkulele", Name: "Tab. ukulele", Group: StaffGroupTab, Lines: 4},
	{XMLName: "tabBalajka", Name: "Tab. balalaika", Group: StaffGroupTab, Lines: 3},
	{XMLName: "tabDulcimer", Name: "Tab. dulcimer", Group: StaffGroupTab, Lines: 3},
	{XMLName: "tab6StrItalian", Name: "Tab. 6-str. Italian", Group: StaffGroupTab, Lines: 6},
	{XMLName: "tab6StrFrench", Name: "Tab. 6-str. French", Group: StaffGroupTab, Lines: 6},
	{XMLName: "tab7StrCommon", Name: "Tab. 7-str. common", Group: StaffGroupTab, Lines: 7},
	{XMLName: "tab8StrCommon", Name: "Tab. 8-str. common", Group: StaffGroupTab, Lines: 8},
}

// StaffTypes is the built-in preset table.
type StaffTypes struct{}

// ByXMLName returns the preset with the given document name.
func (StaffTypes) ByXMLName(name string) (StaffType, bool) {
	for _, p := range _presets {
		if p.XMLName == name {
			return p, true
		}
	}
	return StaffType{}, false
}

// Default returns the preset used for a group when none is named.
func (StaffTypes) Default(g StaffGroup) StaffType {
	switch g {
	case StaffGroupPercussion:
		return _presets[3]
	case StaffGroupTab:
		return _presets[5]
	default:
		return _presets[0]
	}
}
