package domain

// Step identifies one stage of the wizard workflow.
type Step int

// Wizard steps in forward order. The only backward transitions are the
// analysis-failure reset and the explicit restart from FinalEdit.
const (
	// StepImport is the journal text entry stage.
	StepImport Step = iota
	// StepSyncing is the simulated data-sync stage.
	StepSyncing
	// StepAnalyzing is the remote analysis stage.
	StepAnalyzing
	// StepDashboard is the year-summary dashboard stage.
	StepDashboard
	// StepImageGen is the cover image generation stage.
	StepImageGen
	// StepFinalEdit is the caption editing and export stage.
	StepFinalEdit
)

// String returns the string representation of the step.
func (s Step) String() string {
	switch s {
	case StepImport:
		return "import"
	case StepSyncing:
		return "syncing"
	case StepAnalyzing:
		return "analyzing"
	case StepDashboard:
		return "dashboard"
	case StepImageGen:
		return "image_gen"
	case StepFinalEdit:
		return "final_edit"
	default:
		return "unknown"
	}
}

// IsValid returns true if the step is one of the six wizard stages.
func (s Step) IsValid() bool {
	return s >= StepImport && s <= StepFinalEdit
}
