package recorder

// Action names written to the journal.
const (
	ActionAdd      = "ADD"
	ActionClear    = "CLEAR"
	ActionShow     = "SHOW"
	ActionCompare  = "COMPARE"
	ActionValidate = "VALIDATE"
)

// Outcomes of a journaled action.
const (
	OutcomeOK      = "OK"
	OutcomePartial = "PARTIAL"
	OutcomeFailed  = "FAILED"
	OutcomeRefused = "REFUSED"
)

// ActionEvent describes one completed user action.
type ActionEvent struct {
	Action  string   // one of the Action* constants
	Symbols []string // symbols the action touched
	Window  string   // empty for actions without a time window
	Outcome string   // one of the Outcome* constants
	Rows    int      // price rows fetched
	Note    string
}

// Recorder journals user actions for later analysis. Entries are never read
// back by the program.
type Recorder interface {
	RecordAction(evt *ActionEvent) error
	Close() error
}
