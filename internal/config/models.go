package config

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// Config represents the entire preferences file.
type Config struct {
	Version   int    `yaml:"version"`
	LogLevel  string `yaml:"log_level"`          // debug, info, warn, error; empty is silent
	LogFile   string `yaml:"log_file,omitempty"` // Defaults to <config dir>/orderchat.log
	AltScreen bool   `yaml:"alt_screen"`         // Run the UI in the alternate screen buffer
	Theme     Theme  `yaml:"theme"`
}

// Theme holds the colours of the two screens and their buttons.
type Theme struct {
	FormAccent   string `yaml:"form_accent"`   // Form screen accent (flamingo pink)
	ChatAccent   string `yaml:"chat_accent"`   // Chat screen accent (yellow)
	SubmitButton string `yaml:"submit_button"` // "Submit Details" button (green)
	ChatButton   string `yaml:"chat_button"`   // Chat and menu buttons (blue)
	BackButton   string `yaml:"back_button"`   // "Go Back" button (gray)
}

// DefaultTheme returns the stock colours.
func DefaultTheme() Theme {
	return Theme{
		FormAccent:   "#ff6f61",
		ChatAccent:   "#ffeb3b",
		SubmitButton: "#28a745",
		ChatButton:   "#007bff",
		BackButton:   "#6c757d",
	}
}

// Default creates a Config with default values.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		AltScreen: true,
		Theme:     DefaultTheme(),
	}
}

// fillDefaults replaces empty theme entries with stock colours so a partial
// file still yields a usable theme.
func (c *Config) fillDefaults() {
	def := DefaultTheme()
	if c.Theme.FormAccent == "" {
		c.Theme.FormAccent = def.FormAccent
	}
	if c.Theme.ChatAccent == "" {
		c.Theme.ChatAccent = def.ChatAccent
	}
	if c.Theme.SubmitButton == "" {
		c.Theme.SubmitButton = def.SubmitButton
	}
	if c.Theme.ChatButton == "" {
		c.Theme.ChatButton = def.ChatButton
	}
	if c.Theme.BackButton == "" {
		c.Theme.BackButton = def.BackButton
	}
}
