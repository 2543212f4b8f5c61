package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// handleNormalKeys routes keys in normal editing mode. Anything that is
// not a chord goes to the textarea as an edit action, which also clears
// the last error.
func (a *App) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		if a.editor.Dirty() {
			a.editor.Mode = ModeConfirmQuit
			a.editor.Textarea.Blur()
			return nil
		}
		return tea.Quit

	case "ctrl+n":
		a.editor.StartNew()
		return a.status.ShowInfo("new file")

	case "ctrl+o":
		return a.editor.StartPicking()

	case "ctrl+s":
		return a.save()

	case "ctrl+y":
		return a.copyToClipboard()

	case "ctrl+v":
		return a.pasteFromClipboard()

	case "ctrl+g":
		a.editor.ShowHelp = true
		return nil
	}

	a.editor.ClearError()
	var cmd tea.Cmd
	a.editor.Textarea, cmd = a.editor.Textarea.Update(msg)
	return cmd
}

// save writes directly when the document already has a path, otherwise
// it opens the save-as prompt first.
func (a *App) save() tea.Cmd {
	if a.editor.Path != "" {
		return saveFileCmd(a.editor.Path, a.editor.Content())
	}
	return a.editor.StartSaveAs()
}

// updatePicker drives the open-file dialog. Esc cancels; selecting a
// file kicks off the async load.
func (a *App) updatePicker(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			a.editor.StopPicking(true)
			return nil
		}
	}

	var cmd tea.Cmd
	a.editor.Picker, cmd = a.editor.Picker.Update(msg)

	if didSelect, path := a.editor.Picker.DidSelectFile(msg); didSelect {
		a.editor.StopPicking(false)
		a.editor.Loading = true
		return tea.Batch(loadFileCmd(path), a.editor.Spinner.Tick)
	}

	return cmd
}

// handleSaveAsKeys drives the save-path prompt.
func (a *App) handleSaveAsKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		a.editor.StopSaveAs(true)
		return nil

	case "enter":
		path := strings.TrimSpace(a.editor.SaveInput.Value())
		if path == "" {
			return nil
		}
		content := a.editor.Content()
		a.editor.StopSaveAs(false)
		return saveFileCmd(path, content)
	}

	var cmd tea.Cmd
	a.editor.SaveInput, cmd = a.editor.SaveInput.Update(msg)
	return cmd
}

// handleConfirmQuitKeys asks before discarding unsaved changes.
func (a *App) handleConfirmQuitKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter", "ctrl+c":
		return tea.Quit
	}
	a.editor.Mode = ModeNormal
	a.editor.Textarea.Focus()
	return nil
}

func (a *App) copyToClipboard() tea.Cmd {
	if err := clipboard.WriteAll(a.editor.Content()); err != nil {
		return a.status.ShowError("copy failed: " + err.Error())
	}
	return a.status.ShowSuccess("copied to clipboard")
}

func (a *App) pasteFromClipboard() tea.Cmd {
	text, err := clipboard.ReadAll()
	if err != nil {
		return a.status.ShowError("paste failed: " + err.Error())
	}
	a.editor.ClearError()
	a.editor.Textarea.InsertString(text)
	return nil
}
