package lime

// Method is the verb of a command
type Method string

// Command methods
const (
	MethodGet         Method = "get"
	MethodSet         Method = "set"
	MethodMerge       Method = "merge"
	MethodDelete      Method = "delete"
	MethodSubscribe   Method = "subscribe"
	MethodUnsubscribe Method = "unsubscribe"
	MethodObserve     Method = "observe"
)

// Valid reports whether m is a known command method
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodSet, MethodMerge, MethodDelete,
		MethodSubscribe, MethodUnsubscribe, MethodObserve:
		return true
	}

	return false
}

// Status is the processing status of a response command
type Status string

// Command statuses
const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Reason codes used by response commands
const (
	ReasonGeneralError                = 1
	ReasonValidationError             = 11
	ReasonCommandResourceNotSupported = 61
	ReasonCommandMethodNotSupported   = 62
	ReasonCommandResourceNotFound     = 67
)
