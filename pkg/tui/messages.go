package tui

import "github.com/scribly/scribly-cli/pkg/models"

// OpErrorKind classifies failures of file and dialog operations.
type OpErrorKind int

const (
	// ErrorKindDialogClosed means the user cancelled a file dialog.
	ErrorKindDialogClosed OpErrorKind = iota
	// ErrorKindIOFailed means a filesystem operation failed.
	ErrorKindIOFailed
)

// OpError is the non-fatal error shown in the status bar. For
// ErrorKindIOFailed it carries the underlying OS error.
type OpError struct {
	Kind OpErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e.Kind == ErrorKindDialogClosed {
		return "dialog closed"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "I/O failed"
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func dialogClosed() *OpError {
	return &OpError{Kind: ErrorKindDialogClosed}
}

func ioFailed(err error) *OpError {
	return &OpError{Kind: ErrorKindIOFailed, Err: err}
}

// FileOpenedMsg is the completion of an async open. Exactly one of Doc
// and Err is set.
type FileOpenedMsg struct {
	Doc *models.Document
	Err *OpError
}

// FileSavedMsg is the completion of an async save.
type FileSavedMsg struct {
	Path string
	Err  *OpError
}

// ClearStatusMsg expires a transient status message.
type ClearStatusMsg struct{}
