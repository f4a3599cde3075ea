// Package commands parses and dispatches the command-palette surface of the
// dashboard. Parsing is deliberately forgiving about whitespace and a
// leading slash; anything else unknown is rejected with a typed error the
// status bar can display.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeComplete Type = "complete"
	TypeAssign   Type = "assign"
	TypeAttach   Type = "attach"
	TypeRead     Type = "read"
	TypeShow     Type = "show"
	TypeExport   Type = "export"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type CompleteArgs struct {
	Target string // task id or "selected"
}

type AssignArgs struct {
	Target   string // task id or "selected"
	Assignee string // user id or display name
}

type AttachArgs struct {
	Target   string
	FileName string
}

type ReadArgs struct {
	Target string // notification id or "all"
}

type ShowArgs struct {
	Subject    string
	Department string
	Status     string
}

type ExportArgs struct {
	Format string // "csv" or "summary"
	Path   string
}

type Command struct {
	Type     Type
	Raw      string
	Complete *CompleteArgs
	Assign   *AssignArgs
	Attach   *AttachArgs
	Read     *ReadArgs
	Show     *ShowArgs
	Export   *ExportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeComplete:
		return parseComplete(input, args)
	case TypeAssign:
		return parseAssign(input, args)
	case TypeAttach:
		return parseAttach(input, args)
	case TypeRead:
		return parseRead(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeExport:
		return parseExport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseComplete(raw string, args []string) (Command, error) {
	target := "selected"
	if len(args) > 0 {
		target = args[0]
	}
	return Command{Type: TypeComplete, Raw: raw, Complete: &CompleteArgs{Target: target}}, nil
}

func parseAssign(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "assign requires target and assignee"}
	}
	return Command{Type: TypeAssign, Raw: raw, Assign: &AssignArgs{
		Target:   args[0],
		Assignee: strings.Join(args[1:], " "),
	}}, nil
}

func parseAttach(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "attach requires target and file name"}
	}
	return Command{Type: TypeAttach, Raw: raw, Attach: &AttachArgs{
		Target:   args[0],
		FileName: strings.Join(args[1:], " "),
	}}, nil
}

func parseRead(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "read requires a notification id or 'all'"}
	}
	return Command{Type: TypeRead, Raw: raw, Read: &ReadArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	show := &ShowArgs{Subject: strings.ToLower(args[0])}
	for _, arg := range args[1:] {
		lower := strings.ToLower(arg)
		if strings.HasPrefix(lower, "dept:") {
			show.Department = strings.TrimSpace(strings.TrimPrefix(arg, "dept:"))
		}
		if strings.HasPrefix(lower, "status:") {
			show.Status = strings.TrimSpace(strings.TrimPrefix(arg, "status:"))
		}
	}
	return Command{Type: TypeShow, Raw: raw, Show: show}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a format (csv or summary)"}
	}
	format := strings.ToLower(args[0])
	if format != "csv" && format != "summary" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported export format: %s", format)}
	}
	path := ""
	if len(args) > 1 {
		path = strings.Join(args[1:], " ")
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Format: format, Path: path}}, nil
}
