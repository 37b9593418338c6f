package model

import "strings"

// PassMark is the lowest mark that counts as a pass.
const PassMark = 40

// GradeKeySeparator joins the roll and subject code in the persisted key.
const GradeKeySeparator = "_"

// GradeKey identifies one grade record.
type GradeKey struct {
	Roll string
	Code string
}

// String returns the persisted form ROLL_CODE.
func (k GradeKey) String() string {
	return k.Roll + GradeKeySeparator + k.Code
}

// ParseGradeKey splits a persisted ROLL_CODE key. A roll may itself contain
// the separator, so the first split whose roll satisfies isRoll wins; when no
// split matches, the key is split on the first separator.
func ParseGradeKey(s string, isRoll func(string) bool) (GradeKey, bool) {
	first := strings.Index(s, GradeKeySeparator)
	if first < 0 {
		return GradeKey{}, false
	}
	if isRoll != nil {
		for i := first; ; {
			if roll := s[:i]; isRoll(roll) {
				return GradeKey{Roll: roll, Code: s[i+len(GradeKeySeparator):]}, true
			}
			next := strings.Index(s[i+len(GradeKeySeparator):], GradeKeySeparator)
			if next < 0 {
				break
			}
			i += len(GradeKeySeparator) + next
		}
	}
	return GradeKey{Roll: s[:first], Code: s[first+len(GradeKeySeparator):]}, true
}

// GradeStatus is the pass/fail classification of a mark.
type GradeStatus string

const (
	StatusPass GradeStatus = "PASS"
	StatusFail GradeStatus = "FAIL"
)

// StatusFor classifies marks against PassMark.
func StatusFor(marks float64) GradeStatus {
	if marks >= PassMark {
		return StatusPass
	}
	return StatusFail
}

// MarksInput carries a parsed mark through range validation.
type MarksInput struct {
	Marks float64 `json:"marks" validate:"gte=0,lte=100"`
}

// GradeEntry is a recorded grade with its names resolved.
type GradeEntry struct {
	Student Student `json:"student"`
	Subject Subject `json:"subject"`
	Marks   float64 `json:"marks"`
}
