package config

// projectFile represents the structure of the droidforge.yaml file.
type projectFile struct {
	BuildRoot   string            `yaml:"build_root"`
	DistRoot    string            `yaml:"dist_root"`
	Parallelism int               `yaml:"parallelism"`
	Apps        map[string]appDTO `yaml:"apps"`
}

// appDTO represents one app declaration in the project file.
type appDTO struct {
	FormalName string          `yaml:"formal_name"`
	Bundle     string          `yaml:"bundle"`
	Version    string          `yaml:"version"`
	Permission map[string]bool `yaml:"permission"`
	Feature    map[string]bool `yaml:"feature"`
	Activity   string          `yaml:"activity"`
}
