package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var body string
	switch {
	case a.editor.ShowHelp:
		body = a.helpView()
	case a.editor.Mode == ModePicking:
		body = a.pickerView()
	default:
		body = a.editor.Textarea.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.titleView(), body, a.statusView())
}

func (a *App) titleView() string {
	return TitleStyle.Render("scribly") + TitleHintStyle.Render("ctrl+g for help")
}

func (a *App) pickerView() string {
	title := DialogTitleStyle.Render("Open a file") +
		TitleHintStyle.Render("  enter to open, esc to cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, a.editor.Picker.View())
}

func (a *App) helpView() string {
	help := strings.Join([]string{
		"ctrl+o  open a file",
		"ctrl+s  save (prompts for a path the first time)",
		"ctrl+n  new file",
		"ctrl+y  copy the whole document to the clipboard",
		"ctrl+v  paste from the clipboard",
		"ctrl+g  toggle this help",
		"ctrl+c  quit",
		"",
		"Press any key to close.",
	}, "\n")
	return HelpStyle.Render(wordwrap.String(help, a.width-2))
}

// statusView renders the bottom line: dialogs take it over, otherwise it
// shows the last error, transient feedback, or the document path, with
// the cursor position on the right.
func (a *App) statusView() string {
	switch a.editor.Mode {
	case ModeSaveAs:
		return StatusBarStyle.Render(a.editor.SaveInput.View())
	case ModeConfirmQuit:
		question := StatusDirtyStyle.Render("unsaved changes, quit anyway? (y/n)")
		return StatusBarStyle.Render(question)
	}

	var left string
	switch {
	case a.editor.Err != nil:
		left = StatusErrorStyle.Render("✗ " + a.editor.Err.Error())
	case a.editor.Loading:
		left = a.editor.Spinner.View() + " opening..."
	case a.status.Visible():
		fb := a.status.CurrentStatus
		text := strings.TrimSpace(fb.Icon + " " + fb.Message)
		switch fb.Type {
		case StatusTypeSuccess:
			left = StatusSuccessStyle.Render(text)
		case StatusTypeError:
			left = StatusErrorStyle.Render(text)
		default:
			left = text
		}
	default:
		left = a.editor.Path
		if left == "" {
			left = "new file"
		}
		if a.editor.Dirty() {
			left += " " + StatusDirtyStyle.Render("●")
		}
	}

	line, column := a.editor.CursorPosition()
	right := CursorPositionStyle.Render(fmt.Sprintf("%d:%d", line, column))

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
