package entities

type Stage string

const (
	StageStart     Stage = "start"
	StageValidated Stage = "validated"
	StageReserved  Stage = "reserved"
	StagePriced    Stage = "priced"
	StageConfirmed Stage = "confirmed"
	StageFailed    Stage = "failed"
)

func (s Stage) IsTerminal() bool {
	return s == StageConfirmed || s == StageFailed
}

func (s Stage) String() string {
	return string(s)
}

const MessageOrderProcessed = "Order processed successfully"

// ProcessResult is either a confirmed order or a failure with a reason from the error taxonomy.
type ProcessResult struct {
	Success       bool
	Order         *OrderRecord
	Message       string
	Notifications []Notification

	Err error
	// FailedFrom is the last stage reached before the failure.
	FailedFrom Stage
}

func Succeeded(record *OrderRecord, notifications []Notification) ProcessResult {
	return ProcessResult{
		Success:       true,
		Order:         record,
		Message:       MessageOrderProcessed,
		Notifications: notifications,
	}
}

func Failed(from Stage, err error) ProcessResult {
	return ProcessResult{Err: err, FailedFrom: from}
}

func (r ProcessResult) Stage() Stage {
	if r.Success {
		return StageConfirmed
	}
	return StageFailed
}

// Reason returns the taxonomy code of a failed result, or an empty string on success.
func (r ProcessResult) Reason() string {
	if r.Success {
		return ""
	}
	return Reason(r.Err)
}

func (r ProcessResult) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
