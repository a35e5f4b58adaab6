package config

// Sitefile represents the structure of the logolink.yaml configuration file.
type Sitefile struct {
	Version string     `yaml:"version"`
	Site    SiteDTO    `yaml:"site"`
	Admin   AdminDTO   `yaml:"admin"`
	Widget  WidgetDTO  `yaml:"widget"`
	Options OptionsDTO `yaml:"options"`
}

// SiteDTO describes the site being fronted.
type SiteDTO struct {
	Listen          string `yaml:"listen"`
	HomeURL         string `yaml:"home_url"`
	MediaLibraryURL string `yaml:"media_library_url"`
	Upstream        string `yaml:"upstream"`
	Root            string `yaml:"root"`
	ThemeDir        string `yaml:"theme_dir"`
}

// AdminDTO configures the admin endpoints. They listen apart from the site
// and, when a token is set, require it as a bearer credential.
type AdminDTO struct {
	Listen string `yaml:"listen"`
	Token  string `yaml:"token"`
}

// WidgetDTO configures the injected widget.
type WidgetDTO struct {
	ScriptBase     string   `yaml:"script_base"`
	AssetsDir      string   `yaml:"assets_dir"`
	Presentation   string   `yaml:"presentation"`
	Selectors      []string `yaml:"selectors"`
	ExtraSelectors []string `yaml:"extra_selectors"`
}

// OptionsDTO locates the option store.
type OptionsDTO struct {
	Path string `yaml:"path"`
}
