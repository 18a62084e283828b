package game

// Display modes the host can render a board in.
const (
	DisplayStandard = "standard"
	DisplayCompact  = "compact"
)

// Settings are per-game preferences. They ride inside the state but are
// not part of the undo history.
type Settings struct {
	ShowErrors  bool
	Symmetric   bool
	AutoMarks   bool
	DisplayMode string
}

// DefaultSettings mirrors a fresh install: errors hidden, unconstrained
// scrambles, standard rendering.
func DefaultSettings() Settings {
	return Settings{DisplayMode: DisplayStandard}
}

// SettingsPatch is a partial settings update; nil fields keep the current
// value.
type SettingsPatch struct {
	ShowErrors  *bool
	Symmetric   *bool
	DisplayMode *string
}

// merge applies the patch over s and returns the result.
func (s Settings) merge(p SettingsPatch) Settings {
	if p.ShowErrors != nil {
		s.ShowErrors = *p.ShowErrors
	}
	if p.Symmetric != nil {
		s.Symmetric = *p.Symmetric
	}
	if p.DisplayMode != nil {
		s.DisplayMode = *p.DisplayMode
	}
	return s
}
