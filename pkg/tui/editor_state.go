package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribly/scribly-cli/pkg/models"
)

// EditorMode represents the current mode of the editor
type EditorMode int

const (
	// ModeNormal is the default editing mode
	ModeNormal EditorMode = iota
	// ModePicking is when the open-file picker dialog is active
	ModePicking
	// ModeSaveAs is when the save-path prompt dialog is active
	ModeSaveAs
	// ModeConfirmQuit is when quitting with unsaved changes
	ModeConfirmQuit
)

// EditorState holds the document buffer and everything around it. Dialogs
// are modal, so Mode doubles as the in-flight-operation guard: only one
// open/save flow can be active at a time.
type EditorState struct {
	// Document state
	Mode         EditorMode
	Path         string // empty means unsaved new document
	SavedContent string // content at last open/save, for dirty tracking
	Err          *OpError
	Loading      bool
	ShowHelp     bool

	// UI components
	Textarea  textarea.Model
	Picker    filepicker.Model
	SaveInput textinput.Model
	Spinner   spinner.Model

	settings *models.Settings
}

// NewEditorState creates the editor with an empty unsaved document.
func NewEditorState(settings *models.Settings) *EditorState {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = settings.Editor.ShowLineNumbers
	ta.Prompt = "  "
	ta.CharLimit = settings.Editor.CharLimit
	ta.SetWidth(80)
	ta.SetHeight(20)
	ta.Focus()

	fp := filepicker.New()
	fp.ShowHidden = settings.Files.ShowHidden
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{} // all files
	fp.AutoHeight = false
	fp.Height = 20

	si := textinput.New()
	si.Placeholder = "path/to/file.txt"
	si.Prompt = "Save as: "
	si.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &EditorState{
		Mode:      ModeNormal,
		Textarea:  ta,
		Picker:    fp,
		SaveInput: si,
		Spinner:   sp,
		settings:  settings,
	}
}

// Content returns the current buffer text.
func (e *EditorState) Content() string {
	return e.Textarea.Value()
}

// Dirty reports whether the buffer differs from what is on disk.
func (e *EditorState) Dirty() bool {
	return e.Textarea.Value() != e.SavedContent
}

// ClearError drops the last operation error. Called on every edit.
func (e *EditorState) ClearError() {
	e.Err = nil
}

// StartNew resets the editor to an empty unsaved document.
func (e *EditorState) StartNew() {
	e.Mode = ModeNormal
	e.Path = ""
	e.SavedContent = ""
	e.Err = nil
	e.Loading = false
	e.Textarea.Reset()
	e.Textarea.Focus()
}

// StartPicking activates the open-file dialog. The returned command
// kicks off the picker's directory read.
func (e *EditorState) StartPicking() tea.Cmd {
	e.Mode = ModePicking
	e.Picker.CurrentDirectory = e.pickerDir()
	e.Textarea.Blur()
	return e.Picker.Init()
}

func (e *EditorState) pickerDir() string {
	if dir := e.settings.Files.PickerStartDir; dir != "" {
		return dir
	}
	if e.Path != "" {
		return filepath.Dir(e.Path)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// StopPicking leaves the open-file dialog. A cancelled dialog records
// the dialog-closed error and changes nothing else.
func (e *EditorState) StopPicking(cancelled bool) {
	e.Mode = ModeNormal
	e.Textarea.Focus()
	if cancelled {
		e.Err = dialogClosed()
	}
}

// StartSaveAs activates the save-path prompt, pre-filled with the
// current path if there is one.
func (e *EditorState) StartSaveAs() tea.Cmd {
	e.Mode = ModeSaveAs
	e.SaveInput.SetValue(e.Path)
	e.SaveInput.CursorEnd()
	e.Textarea.Blur()
	return e.SaveInput.Focus()
}

// StopSaveAs leaves the save-path prompt.
func (e *EditorState) StopSaveAs(cancelled bool) {
	e.Mode = ModeNormal
	e.SaveInput.Blur()
	e.SaveInput.Reset()
	e.Textarea.Focus()
	if cancelled {
		e.Err = dialogClosed()
	}
}

// ApplyOpened folds an open completion into the state. On failure only
// the error field changes.
func (e *EditorState) ApplyOpened(msg FileOpenedMsg) {
	e.Loading = false
	if msg.Err != nil {
		e.Err = msg.Err
		return
	}
	e.Path = msg.Doc.Path
	e.SavedContent = msg.Doc.Content
	e.Textarea.SetValue(msg.Doc.Content)
	e.Textarea.Focus()
	e.Err = nil
}

// ApplySaved folds a save completion into the state.
func (e *EditorState) ApplySaved(msg FileSavedMsg) {
	if msg.Err != nil {
		e.Err = msg.Err
		return
	}
	e.Path = msg.Path
	e.SavedContent = e.Textarea.Value()
	e.Err = nil
}

// CursorPosition returns the 1-based line and column of the cursor.
func (e *EditorState) CursorPosition() (line, column int) {
	return e.Textarea.Line() + 1, e.Textarea.LineInfo().ColumnOffset + 1
}

// SetSize resizes the editor widgets to the window dimensions.
func (e *EditorState) SetSize(width, height int) {
	// One line each for the title and status bars.
	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	e.Textarea.SetWidth(width)
	e.Textarea.SetHeight(bodyHeight)
	e.SaveInput.Width = width - len(e.SaveInput.Prompt) - 4

	pickerHeight := bodyHeight - 2
	if pickerHeight < 1 {
		pickerHeight = 1
	}
	e.Picker.Height = pickerHeight
}
