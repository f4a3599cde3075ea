package commands

import "fmt"

// Result carries the status-bar message for a successful command.
type Result struct {
	Message string
}

// Handlers binds each palette command to application behavior. Nil fields
// cause Execute to fail with ErrCodeHandlerMissing rather than panic.
type Handlers struct {
	Complete func(CompleteArgs) (Result, error)
	Assign   func(AssignArgs) (Result, error)
	Attach   func(AttachArgs) (Result, error)
	Read     func(ReadArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
	Export   func(ExportArgs) (Result, error)
}

func Execute(cmd Command, h Handlers) (Result, error) {
	switch cmd.Type {
	case TypeComplete:
		if h.Complete == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Complete(*cmd.Complete)
	case TypeAssign:
		if h.Assign == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Assign(*cmd.Assign)
	case TypeAttach:
		if h.Attach == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Attach(*cmd.Attach)
	case TypeRead:
		if h.Read == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Read(*cmd.Read)
	case TypeShow:
		if h.Show == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Show(*cmd.Show)
	case TypeExport:
		if h.Export == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Export(*cmd.Export)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("no handler registered for %s", t)}
}
