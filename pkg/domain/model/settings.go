package model

// Settings holds application-wide preferences
type Settings struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"autoSave"`
	DefaultView   string `json:"defaultView"`
}

// DefaultSettings returns the initial settings used when no settings have
// been stored yet.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:         "light",
		Language:      "en",
		Notifications: true,
		AutoSave:      true,
		DefaultView:   "dashboard",
	}
}

// SettingsPatch is a partial update of Settings. Nil fields are left
// unchanged.
type SettingsPatch struct {
	Theme         *string `json:"theme,omitempty"`
	Language      *string `json:"language,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	AutoSave      *bool   `json:"autoSave,omitempty"`
	DefaultView   *string `json:"defaultView,omitempty"`
}

// Apply merges the patch into the settings.
func (p SettingsPatch) Apply(target *Settings) {
	if p.Theme != nil {
		target.Theme = *p.Theme
	}
	if p.Language != nil {
		target.Language = *p.Language
	}
	if p.Notifications != nil {
		target.Notifications = *p.Notifications
	}
	if p.AutoSave != nil {
		target.AutoSave = *p.AutoSave
	}
	if p.DefaultView != nil {
		target.DefaultView = *p.DefaultView
	}
}
