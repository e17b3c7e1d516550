package config

// FileName is the configuration file written at the root of a scaffolded
// workspace.
const FileName = ".task-config.yaml"

// Config is the full workspace configuration. Field order matters: the YAML
// encoder preserves struct declaration order, and the rendered file is
// expected to list fields in this order.
type Config struct {
	ProjectName          string         `yaml:"project_name"`
	ComplexityUnit       ComplexityUnit `yaml:"complexity_unit"`
	ComplexityScale      string         `yaml:"complexity_scale"`
	Statuses             []string       `yaml:"statuses"`
	PriorityLevels       []string       `yaml:"priority_levels"`
	Modules              []Module       `yaml:"modules"`
	ApprovalGatesEnabled bool           `yaml:"approval_gates_enabled"`
	ExternalTracker      *string        `yaml:"integration_external_tracker"`
}

// Module is a named subdivision of the target project. Owner is a pointer,
// like Config.ExternalTracker, so the unset value renders as an explicit null
// rather than an empty string.
type Module struct {
	Name  string  `yaml:"name"`
	Path  string  `yaml:"path"`
	Owner *string `yaml:"owner"`
}

const (
	defaultComplexityUnit  = UnitGeneric
	defaultComplexityScale = "small (1-2), medium (3-5), large (6-10)"
)

// Default returns a freshly allocated default configuration. Every call
// returns independent slices, so one build can never leak state into the next.
func Default() Config {
	return Config{
		ProjectName:     "",
		ComplexityUnit:  defaultComplexityUnit,
		ComplexityScale: defaultComplexityScale,
		Statuses:        []string{"TODO", "IN_PROGRESS", "BLOCKED", "REVIEW", "DONE"},
		PriorityLevels:  []string{"P0-Critical", "P1-High", "P2-Medium", "P3-Low"},
		Modules:         []Module{},
	}
}

// Build produces the configuration for one run from the defaults plus the
// user-supplied overrides. It is pure: validation of the complexity unit is
// the argument layer's job, and projectName is assumed non-empty upstream.
func Build(projectName string, unit ComplexityUnit, moduleNames []string) Config {
	cfg := Default()
	cfg.ProjectName = projectName
	if unit != "" {
		cfg.ComplexityUnit = unit
	}
	for _, name := range moduleNames {
		cfg.Modules = append(cfg.Modules, Module{
			Name: name,
			Path: "src/" + name,
		})
	}
	return cfg
}
