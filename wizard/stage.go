package wizard

// Stage identifies a step of the submission flow. Stages are strictly
// ordered; results produced at one stage are inputs to the next.
type Stage int

const (
	// StageSetup connects the signer session and checks configuration.
	StageSetup Stage = iota + 1

	// StageIdentity runs identity verification for the connected account.
	StageIdentity

	// StageForm collects the incident report fields.
	StageForm

	// StageGenerate renders the report document.
	StageGenerate

	// StageUpload pushes the document to content-addressed storage.
	StageUpload

	// StageSubmit records the upload on the incident ledger.
	StageSubmit

	// StageSummary presents the confirmed record. Terminal.
	StageSummary
)

func (s Stage) String() string {
	switch s {
	case StageSetup:
		return "setup"
	case StageIdentity:
		return "identity"
	case StageForm:
		return "form"
	case StageGenerate:
		return "generate"
	case StageUpload:
		return "upload"
	case StageSubmit:
		return "submit"
	case StageSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a defined stage.
func (s Stage) Valid() bool {
	return s >= StageSetup && s <= StageSummary
}

// next returns the following stage. Summary has no successor.
func (s Stage) next() (Stage, bool) {
	if s >= StageSummary || !s.Valid() {
		return s, false
	}
	return s + 1, true
}
