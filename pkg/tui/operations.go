package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scribly/scribly-cli/pkg/files"
)

// loadFileCmd reads a file in the background and delivers the result
// back into the update loop as a FileOpenedMsg.
func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := files.ReadDocument(path)
		if err != nil {
			return FileOpenedMsg{Err: ioFailed(err)}
		}
		return FileOpenedMsg{Doc: doc}
	}
}

// saveFileCmd writes content to path in the background and delivers a
// FileSavedMsg.
func saveFileCmd(path, content string) tea.Cmd {
	return func() tea.Msg {
		absPath, err := files.WriteDocument(path, content)
		if err != nil {
			return FileSavedMsg{Err: ioFailed(err)}
		}
		return FileSavedMsg{Path: absPath}
	}
}
