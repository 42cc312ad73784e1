package notation

// _diatonicSteps maps a chromatic interval within one octave to the number of
// diatonic steps of its usual spelling.
var _diatonicSteps = [12]int{0, 1, 1, 2, 2, 3, 3, 4, 5, 5, 6, 6}

// Intervals derives interval spellings.
type Intervals struct{}

// Diatonic returns the diatonic step count for a chromatic interval in
// semitones. Negative intervals yield negative step counts.
func (Intervals) Diatonic(chromatic int) int {
	down := chromatic < 0
	if down {
		chromatic = -chromatic
	}
	steps := _diatonicSteps[chromatic%12] + chromatic/12*7
	if down {
		return -steps
	}
	return steps
}
