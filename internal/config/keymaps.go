package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard string `yaml:"add_card"`

	// Forms
	SubmitForm string `yaml:"submit_form"`
	CloseForm  string `yaml:"close_form"`

	// Navigation
	PrevLane            string `yaml:"prev_lane"`
	NextLane            string `yaml:"next_lane"`
	ScrollLaneUp        string `yaml:"scroll_lane_up"`
	ScrollLaneDown      string `yaml:"scroll_lane_down"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCard:             "a",
		SubmitForm:          "enter",
		CloseForm:           "esc",
		PrevLane:            "h",
		NextLane:            "l",
		ScrollLaneUp:        "k",
		ScrollLaneDown:      "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",
		Quit:                "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddCard == "" {
		k.AddCard = defaults.AddCard
	}
	if k.SubmitForm == "" {
		k.SubmitForm = defaults.SubmitForm
	}
	if k.CloseForm == "" {
		k.CloseForm = defaults.CloseForm
	}
	if k.PrevLane == "" {
		k.PrevLane = defaults.PrevLane
	}
	if k.NextLane == "" {
		k.NextLane = defaults.NextLane
	}
	if k.ScrollLaneUp == "" {
		k.ScrollLaneUp = defaults.ScrollLaneUp
	}
	if k.ScrollLaneDown == "" {
		k.ScrollLaneDown = defaults.ScrollLaneDown
	}
	if k.ScrollViewportLeft == "" {
		k.ScrollViewportLeft = defaults.ScrollViewportLeft
	}
	if k.ScrollViewportRight == "" {
		k.ScrollViewportRight = defaults.ScrollViewportRight
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
