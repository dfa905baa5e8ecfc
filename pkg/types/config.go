package types

// ExtractConfig holds the resolved output settings for one extraction run.
type ExtractConfig struct {
	// Output is the destination file path. Empty means standard output.
	Output string `json:"output" yaml:"output"`

	// NoHeader suppresses the header row when true.
	NoHeader bool `json:"no_header" yaml:"no_header"`
}

// StoreConfig holds settings for the observation store.
type StoreConfig struct {
	// DBPath is the SQLite database file. Created if missing.
	DBPath string `json:"db" yaml:"db"`
}
