package domain

import "strings"

// Status lines shown during the analyzing stage. Display only; they have
// no functional effect but are part of the product's UX copy.
const (
	// StatusConnecting announces the model connection.
	StatusConnecting = "连接 Gemini 3.0 Pro Thinking 模型..."

	// StatusDeepAnalysis announces the long analysis phase.
	StatusDeepAnalysis = "正在深度分析您的回忆 (这可能需要几秒钟)..."
)

// WizardState is the session's single source of truth: the current step
// and everything accumulated so far. It is a value; Reduce returns the
// next state without mutating the previous one.
type WizardState struct {
	// Step is the current wizard stage.
	Step Step

	// Moments is the raw input carried into analysis.
	Moments []Moment

	// Result is the analysis result, nil until analysis completes.
	Result *AnalysisResult

	// CoverImage is the generated cover as a data URI, empty until set.
	CoverImage string

	// Status is the human-readable progress line shown while analyzing.
	Status string

	// Err is the last analysis failure, nil otherwise. Cleared on the
	// next submission.
	Err error
}

// InitialWizardState returns the state a fresh session starts from.
func InitialWizardState() WizardState {
	return WizardState{Step: StepImport}
}

// Intent is a user action or asynchronous completion driving a wizard
// transition. The closed set of implementations lives in this file.
type Intent interface {
	isIntent()
}

// SubmitText is the import-stage submission of raw journal text.
type SubmitText struct {
	Text string
}

// SyncFinished fires when the fixed sync delay elapses.
type SyncFinished struct{}

// StatusChanged updates the analyzing-stage status line.
type StatusChanged struct {
	Status string
}

// AnalysisSucceeded carries a completed analysis result.
type AnalysisSucceeded struct {
	Result *AnalysisResult
}

// AnalysisFailed carries an analysis failure.
type AnalysisFailed struct {
	Err error
}

// AdvanceFromDashboard is the explicit user advance to image generation.
type AdvanceFromDashboard struct{}

// CoverGenerated carries a generated cover image data URI.
type CoverGenerated struct {
	DataURI string
}

// AdvanceFromImageGen is the user advance to final editing. Valid only
// once a cover image has been set.
type AdvanceFromImageGen struct{}

// Restart returns the wizard to a fresh session from the final stage.
type Restart struct{}

func (SubmitText) isIntent()           {}
func (SyncFinished) isIntent()         {}
func (StatusChanged) isIntent()        {}
func (AnalysisSucceeded) isIntent()    {}
func (AnalysisFailed) isIntent()       {}
func (AdvanceFromDashboard) isIntent() {}
func (CoverGenerated) isIntent()       {}
func (AdvanceFromImageGen) isIntent()  {}
func (Restart) isIntent()              {}

// Reduce applies an intent to the current state and returns the next
// state. Intents that are not valid for the current step leave the state
// unchanged; no other transitions exist.
//
//nolint:gocyclo // exhaustive step/intent matrix is clearer in one place
func Reduce(state WizardState, intent Intent) WizardState {
	switch intent := intent.(type) {
	case SubmitText:
		if state.Step != StepImport {
			return state
		}
		text := strings.TrimSpace(intent.Text)
		if text == "" {
			return state
		}
		state.Step = StepSyncing
		state.Moments = []Moment{NewRawMoment(text)}
		state.Err = nil
		return state

	case SyncFinished:
		if state.Step != StepSyncing {
			return state
		}
		state.Step = StepAnalyzing
		return state

	case StatusChanged:
		if state.Step != StepAnalyzing {
			return state
		}
		state.Status = intent.Status
		return state

	case AnalysisSucceeded:
		if state.Step != StepAnalyzing || intent.Result == nil {
			return state
		}
		state.Step = StepDashboard
		state.Result = intent.Result
		state.Status = ""
		return state

	case AnalysisFailed:
		if state.Step != StepAnalyzing {
			return state
		}
		state.Step = StepImport
		state.Moments = nil
		state.Result = nil
		state.Status = ""
		state.Err = intent.Err
		return state

	case AdvanceFromDashboard:
		if state.Step != StepDashboard {
			return state
		}
		state.Step = StepImageGen
		return state

	case CoverGenerated:
		if state.Step != StepImageGen || intent.DataURI == "" {
			return state
		}
		state.CoverImage = intent.DataURI
		return state

	case AdvanceFromImageGen:
		if state.Step != StepImageGen || state.CoverImage == "" {
			return state
		}
		state.Step = StepFinalEdit
		return state

	case Restart:
		if state.Step != StepFinalEdit {
			return state
		}
		return InitialWizardState()
	}

	return state
}
