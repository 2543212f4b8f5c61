package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := NewApp(nil, "")
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func keyMsg(key tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: key}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSaveWithoutPathOpensSaveAsPrompt(t *testing.T) {
	a := newTestApp(t)
	a.Update(runeMsg('x'))

	a.Update(keyMsg(tea.KeyCtrlS))

	if a.editor.Mode != ModeSaveAs {
		t.Fatalf("Expected save-as mode, got %v", a.editor.Mode)
	}
}

func TestSaveWithPathWritesDirectly(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "direct.txt")
	a.editor.Path = path
	a.Update(runeMsg('h'))
	a.Update(runeMsg('i'))

	_, cmd := a.Update(keyMsg(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("Expected a save command")
	}
	if a.editor.Mode != ModeNormal {
		t.Fatalf("Expected no dialog for a named document, got mode %v", a.editor.Mode)
	}

	msg, ok := cmd().(FileSavedMsg)
	if !ok {
		t.Fatal("Expected a FileSavedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("Expected save to succeed, got %v", msg.Err)
	}
	a.Update(msg)

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(onDisk) != "hi" {
		t.Errorf("Expected %q on disk, got %q", "hi", string(onDisk))
	}
	if a.editor.Dirty() {
		t.Error("Expected document to be clean after save")
	}
}

func TestSaveAsEnterWritesFile(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "named.txt")
	a.Update(runeMsg('z'))

	a.Update(keyMsg(tea.KeyCtrlS))
	a.editor.SaveInput.SetValue(path)
	_, cmd := a.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("Expected a save command")
	}

	msg, ok := cmd().(FileSavedMsg)
	if !ok {
		t.Fatal("Expected a FileSavedMsg")
	}
	a.Update(msg)

	if a.editor.Path == "" {
		t.Error("Expected path to be set after save-as")
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(onDisk) != "z" {
		t.Errorf("Expected %q on disk, got %q", "z", string(onDisk))
	}
}

func TestSaveAsEmptyPathIsIgnored(t *testing.T) {
	a := newTestApp(t)
	a.Update(keyMsg(tea.KeyCtrlS))

	_, cmd := a.Update(keyMsg(tea.KeyEnter))

	if cmd != nil {
		t.Error("Expected no command for an empty path")
	}
	if a.editor.Mode != ModeSaveAs {
		t.Errorf("Expected to stay in save-as mode, got %v", a.editor.Mode)
	}
}

func TestSaveAsEscCancelsWithDialogClosed(t *testing.T) {
	a := newTestApp(t)
	a.Update(runeMsg('q'))
	a.Update(keyMsg(tea.KeyCtrlS))

	a.Update(keyMsg(tea.KeyEsc))

	if a.editor.Mode != ModeNormal {
		t.Errorf("Expected normal mode, got %v", a.editor.Mode)
	}
	if a.editor.Err == nil || a.editor.Err.Kind != ErrorKindDialogClosed {
		t.Fatalf("Expected dialog-closed error, got %v", a.editor.Err)
	}
	if a.editor.Content() != "q" {
		t.Errorf("Expected content unchanged, got %q", a.editor.Content())
	}
	if a.editor.Path != "" {
		t.Errorf("Expected path still empty, got %q", a.editor.Path)
	}
}

func TestOpenEscCancelsWithDialogClosed(t *testing.T) {
	a := newTestApp(t)
	a.Update(runeMsg('k'))

	a.Update(keyMsg(tea.KeyCtrlO))
	if a.editor.Mode != ModePicking {
		t.Fatalf("Expected picking mode, got %v", a.editor.Mode)
	}

	a.Update(keyMsg(tea.KeyEsc))

	if a.editor.Mode != ModeNormal {
		t.Errorf("Expected normal mode, got %v", a.editor.Mode)
	}
	if a.editor.Err == nil || a.editor.Err.Kind != ErrorKindDialogClosed {
		t.Fatalf("Expected dialog-closed error, got %v", a.editor.Err)
	}
	if a.editor.Content() != "k" {
		t.Errorf("Expected content unchanged, got %q", a.editor.Content())
	}
}

func TestEditClearsError(t *testing.T) {
	a := newTestApp(t)
	a.editor.Err = dialogClosed()

	a.Update(runeMsg('a'))

	if a.editor.Err != nil {
		t.Errorf("Expected edit to clear the error, got %v", a.editor.Err)
	}
	if a.editor.Content() != "a" {
		t.Errorf("Expected the edit applied, got %q", a.editor.Content())
	}
}

func TestNewResetsDocument(t *testing.T) {
	a := newTestApp(t)
	a.editor.Path = "/tmp/was.txt"
	a.Update(runeMsg('w'))

	a.Update(keyMsg(tea.KeyCtrlN))

	if a.editor.Path != "" {
		t.Errorf("Expected no path, got %q", a.editor.Path)
	}
	if a.editor.Content() != "" {
		t.Errorf("Expected empty content, got %q", a.editor.Content())
	}
}

func TestQuitCleanBuffer(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(keyMsg(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected a QuitMsg for a clean buffer")
	}
}

func TestQuitDirtyBufferAsksFirst(t *testing.T) {
	a := newTestApp(t)
	a.Update(runeMsg('d'))

	_, cmd := a.Update(keyMsg(tea.KeyCtrlC))
	if cmd != nil {
		t.Fatal("Expected no immediate quit for a dirty buffer")
	}
	if a.editor.Mode != ModeConfirmQuit {
		t.Fatalf("Expected quit confirmation, got mode %v", a.editor.Mode)
	}

	// Declining returns to editing.
	a.Update(runeMsg('n'))
	if a.editor.Mode != ModeNormal {
		t.Fatalf("Expected normal mode after declining, got %v", a.editor.Mode)
	}

	// Confirming quits.
	a.Update(keyMsg(tea.KeyCtrlC))
	_, cmd = a.Update(runeMsg('y'))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected a QuitMsg after confirming")
	}
}
