package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scribly/scribly-cli/pkg/models"
)

// App is the root bubbletea model. All state lives here and is only
// touched from the update loop; background commands communicate through
// messages.
type App struct {
	editor *EditorState
	status *StatusManager

	startPath string
	width     int
	height    int
}

// NewApp creates the application. startPath, when non-empty, is loaded
// asynchronously on startup.
func NewApp(settings *models.Settings, startPath string) *App {
	return &App{
		editor:    NewEditorState(settings),
		status:    NewStatusManager(),
		startPath: startPath,
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if a.startPath != "" {
		a.editor.Loading = true
		cmds = append(cmds, loadFileCmd(a.startPath), a.editor.Spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		return a, nil

	case FileOpenedMsg:
		a.editor.ApplyOpened(msg)
		if msg.Err != nil {
			return a, nil
		}
		return a, a.status.ShowSuccess("opened " + msg.Doc.Path)

	case FileSavedMsg:
		a.editor.ApplySaved(msg)
		if msg.Err != nil {
			return a, nil
		}
		return a, a.status.ShowSuccess("saved " + msg.Path)

	case ClearStatusMsg:
		a.status.Expire()
		return a, nil

	case spinner.TickMsg:
		if !a.editor.Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.editor.Spinner, cmd = a.editor.Spinner.Update(msg)
		return a, cmd
	}

	if a.editor.ShowHelp {
		if _, ok := msg.(tea.KeyMsg); ok {
			a.editor.ShowHelp = false
		}
		return a, nil
	}

	switch a.editor.Mode {
	case ModePicking:
		// The picker also consumes non-key messages (directory reads).
		return a, a.updatePicker(msg)

	case ModeSaveAs:
		if key, ok := msg.(tea.KeyMsg); ok {
			return a, a.handleSaveAsKeys(key)
		}
		var cmd tea.Cmd
		a.editor.SaveInput, cmd = a.editor.SaveInput.Update(msg)
		return a, cmd

	case ModeConfirmQuit:
		if key, ok := msg.(tea.KeyMsg); ok {
			return a, a.handleConfirmQuitKeys(key)
		}
		return a, nil

	default:
		if key, ok := msg.(tea.KeyMsg); ok {
			return a, a.handleNormalKeys(key)
		}
		var cmd tea.Cmd
		a.editor.Textarea, cmd = a.editor.Textarea.Update(msg)
		return a, cmd
	}
}
