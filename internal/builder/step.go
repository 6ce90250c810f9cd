package builder

import "fmt"

// Step is one page of the guided resume form. Steps advance in a fixed
// order; moving backward never discards entered data.
type Step int

const (
	StepPersonal Step = iota + 1
	StepSummary
	StepExperience
	StepEducation
	StepSkills
)

// FirstStep and LastStep bound the flow.
const (
	FirstStep = StepPersonal
	LastStep  = StepSkills
)

var stepNames = map[Step]string{
	StepPersonal:   "personal",
	StepSummary:    "summary",
	StepExperience: "experience",
	StepEducation:  "education",
	StepSkills:     "skills",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid reports whether s is one of the defined steps.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Next returns the following step, clamped at the last one.
func (s Step) Next() Step {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

// Prev returns the preceding step, clamped at the first one.
func (s Step) Prev() Step {
	if s <= FirstStep {
		return FirstStep
	}
	return s - 1
}
