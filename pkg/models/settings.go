package models

// Settings represents the application configuration
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	Files  FileSettings   `yaml:"files"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	ShowLineNumbers bool `yaml:"show_line_numbers"`
	CharLimit       int  `yaml:"char_limit"` // 0 means unlimited
}

// FileSettings controls file picker behavior
type FileSettings struct {
	PickerStartDir string `yaml:"picker_start_dir"` // empty means current directory
	ShowHidden     bool   `yaml:"show_hidden"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			ShowLineNumbers: true,
			CharLimit:       0,
		},
		Files: FileSettings{
			PickerStartDir: "",
			ShowHidden:     false,
		},
	}
}
