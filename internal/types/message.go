package types

// MessageLevel orders minibuffer messages by severity.
type MessageLevel int

const (
	MessageInfo    MessageLevel = iota // result of a command
	MessageWarning                     // recoverable problem
	MessageError                       // failed command
	MessageShowCmd                     // partial command still being typed
)

func (l MessageLevel) String() string {
	switch l {
	case MessageInfo:
		return "info"
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	case MessageShowCmd:
		return "showcmd"
	}
	return "unknown"
}
