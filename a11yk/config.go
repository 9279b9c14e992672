package a11yk

// WCAGRefs success criteria attached to each kind of finding
type WCAGRefs struct {
	Title    string `toml:"title"`
	Headings string `toml:"headings"`
	Images   string `toml:"images"`
	Links    string `toml:"links"`
	Forms    string `toml:"forms"`
}

// Rules are the thresholds and phrase lists the checks read. They are owned
// by the scanner's Config and passed into every check.
type Rules struct {
	MinTitleLength       int      `toml:"min_title_length"`
	MinAltLength         int      `toml:"min_alt_length"`
	AltPlaceholders      []string `toml:"alt_placeholders"`
	AmbiguousLinkPhrases []string `toml:"ambiguous_link_phrases"`
	MinColumnWidth       int      `toml:"min_column_width"`
	MaxLocatorLength     int      `toml:"max_locator_length"`
	WCAG                 WCAGRefs `toml:"wcag"`
}

// DefaultRules used when no config file overrides them
func DefaultRules() *Rules {
	return &Rules{
		MinTitleLength:       3,
		MinAltLength:         3,
		AltPlaceholders:      []string{"image", "img", "picture", "photo", "graphic", "icon", "logo", "spacer", "placeholder"},
		AmbiguousLinkPhrases: []string{"click here", "here", "more", "read more", "link"},
		MinColumnWidth:       8,
		MaxLocatorLength:     40,
		WCAG: WCAGRefs{
			Title:    "2.4.2",
			Headings: "1.3.1",
			Images:   "1.1.1",
			Links:    "2.4.4",
			Forms:    "1.3.1, 4.1.2",
		},
	}
}

// Merge fills zero valued fields from the defaults. A WCAG reference of "-"
// clears it so a rule can be rendered without a reference.
func (r *Rules) Merge(defaults *Rules) *Rules {
	if r == nil {
		return defaults
	}
	out := *r
	if out.MinTitleLength <= 0 {
		out.MinTitleLength = defaults.MinTitleLength
	}
	if out.MinAltLength <= 0 {
		out.MinAltLength = defaults.MinAltLength
	}
	if len(out.AltPlaceholders) == 0 {
		out.AltPlaceholders = defaults.AltPlaceholders
	}
	if len(out.AmbiguousLinkPhrases) == 0 {
		out.AmbiguousLinkPhrases = defaults.AmbiguousLinkPhrases
	}
	if out.MinColumnWidth <= 0 {
		out.MinColumnWidth = defaults.MinColumnWidth
	}
	if out.MaxLocatorLength <= 0 {
		out.MaxLocatorLength = defaults.MaxLocatorLength
	}
	out.WCAG.Title = mergeRef(out.WCAG.Title, defaults.WCAG.Title)
	out.WCAG.Headings = mergeRef(out.WCAG.Headings, defaults.WCAG.Headings)
	out.WCAG.Images = mergeRef(out.WCAG.Images, defaults.WCAG.Images)
	out.WCAG.Links = mergeRef(out.WCAG.Links, defaults.WCAG.Links)
	out.WCAG.Forms = mergeRef(out.WCAG.Forms, defaults.WCAG.Forms)
	return &out
}

func mergeRef(val, def string) string {
	switch val {
	case "":
		return def
	case "-":
		return ""
	}
	return val
}

// Config for a11yker
type Config struct {
	Source    string `toml:"source"`
	OutputDir string `toml:"output_dir"`
	DataPath  string `toml:"data_path"`
	Timeout   int    `toml:"timeout"` // seconds
	UserAgent string `toml:"user_agent"`
	NoHistory bool   `toml:"no_history"`
	Rules     *Rules `toml:"rules"`
}

// DefaultUserAgent looks like a desktop browser, some sites refuse obvious bots
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// DefaultConfig values
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		DataPath:  "a11ykerdata",
		Timeout:   20,
		UserAgent: DefaultUserAgent,
		Rules:     DefaultRules(),
	}
}
