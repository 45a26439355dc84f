package driven

// ConfigStore holds flat, dot-keyed configuration values ("inputs.dir").
// The typed getters return the zero value for missing keys and for values
// of another type.
type ConfigStore interface {
	// Get returns the raw value and whether key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Set changes a value without persisting it.
	Set(key string, value any) error

	// Save persists every value set so far.
	Save() error

	// Load replaces the current values with the persisted ones.
	Load() error

	// Path identifies the backing file.
	Path() string
}
