package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (focused lane, form border)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Lane header colors, one per lane
	Backlog string `yaml:"backlog"`
	Todo    string `yaml:"todo"`
	Doing   string `yaml:"doing"`
	Done    string `yaml:"done"`

	// UI element colors
	LaneBorder     string `yaml:"lane_border"`
	LaneActiveBg   string `yaml:"lane_active_bg"` // Lane background while a card is dragged over it
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	DraggedCard    string `yaml:"dragged_card"`
	Indicator      string `yaml:"indicator"` // Drop insertion line

	// Burn barrel colors
	BarrelIdle   string `yaml:"barrel_idle"`
	BarrelActive string `yaml:"barrel_active"`

	// Text colors
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.Backlog, preset.Backlog)
	fill(&c.Todo, preset.Todo)
	fill(&c.Doing, preset.Doing)
	fill(&c.Done, preset.Done)
	fill(&c.LaneBorder, preset.LaneBorder)
	fill(&c.LaneActiveBg, preset.LaneActiveBg)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.CardBackground, preset.CardBackground)
	fill(&c.DraggedCard, preset.DraggedCard)
	fill(&c.Indicator, preset.Indicator)
	fill(&c.BarrelIdle, preset.BarrelIdle)
	fill(&c.BarrelActive, preset.BarrelActive)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Error, preset.Error)
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.Backlog, other.Backlog)
	merge(&c.Todo, other.Todo)
	merge(&c.Doing, other.Doing)
	merge(&c.Done, other.Done)
	merge(&c.LaneBorder, other.LaneBorder)
	merge(&c.LaneActiveBg, other.LaneActiveBg)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.CardBackground, other.CardBackground)
	merge(&c.DraggedCard, other.DraggedCard)
	merge(&c.Indicator, other.Indicator)
	merge(&c.BarrelIdle, other.BarrelIdle)
	merge(&c.BarrelActive, other.BarrelActive)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Error, other.Error)
}
