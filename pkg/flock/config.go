package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the value-type bundle of tunable scalars controlling behavior
// strength and thresholds. It is copied into a flock at construction and
// mutated afterwards only through the container's setters.
//
// No cross-field invariants are enforced: any field may independently be
// zero or negative. Distances are expected non-negative and weights are
// typically non-negative, but the engine does not reject other values.
type Config struct {
	// Physics limits
	MaxSpeed float64 `json:"maxSpeed"`
	MaxForce float64 `json:"maxForce"`

	// Interaction Radii
	SeparationDistance float64 `json:"separationDistance"`
	AlignmentDistance  float64 `json:"alignmentDistance"`
	CohesionDistance   float64 `json:"cohesionDistance"`

	// Behavior strengths
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`

	// Target steering (dynamic flock only)
	SeekWeight    float64 `json:"seekWeight"`
	WanderRadius  float64 `json:"wanderRadius"`
	WanderEnabled bool    `json:"wanderEnabled"`
}

// DefaultConfig returns the reference tuning used by all runtime targets.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:           2.0,
		MaxForce:           0.05,
		SeparationDistance: 15.0,
		AlignmentDistance:  25.0,
		CohesionDistance:   25.0,
		SeparationWeight:   1.5,
		AlignmentWeight:    1.0,
		CohesionWeight:     1.0,
		SeekWeight:         8.0,
		WanderRadius:       2.0,
		WanderEnabled:      false,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the given JSON schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (Config, error) {
	var cfg Config

	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return cfg, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// tuning holds a flock's copy of the configuration and exposes the
// per-field mutator surface shared by both containers.
type tuning struct {
	cfg Config
}

// Config returns a copy of the current configuration.
func (t *tuning) Config() Config { return t.cfg }

// SetConfig replaces the whole configuration at once.
func (t *tuning) SetConfig(cfg Config) { t.cfg = cfg }

func (t *tuning) SetMaxSpeed(v float64)           { t.cfg.MaxSpeed = v }
func (t *tuning) SetMaxForce(v float64)           { t.cfg.MaxForce = v }
func (t *tuning) SetSeparationDistance(v float64) { t.cfg.SeparationDistance = v }
func (t *tuning) SetAlignmentDistance(v float64)  { t.cfg.AlignmentDistance = v }
func (t *tuning) SetCohesionDistance(v float64)   { t.cfg.CohesionDistance = v }
func (t *tuning) SetSeparationWeight(v float64)   { t.cfg.SeparationWeight = v }
func (t *tuning) SetAlignmentWeight(v float64)    { t.cfg.AlignmentWeight = v }
func (t *tuning) SetCohesionWeight(v float64)     { t.cfg.CohesionWeight = v }
func (t *tuning) SetSeekWeight(v float64)         { t.cfg.SeekWeight = v }
func (t *tuning) SetWanderRadius(v float64)       { t.cfg.WanderRadius = v }
func (t *tuning) SetWanderEnabled(v bool)         { t.cfg.WanderEnabled = v }
