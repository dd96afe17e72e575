package repository

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithNaNValues sets the cell texts read as missing values.
func WithNaNValues(values []string) Option {
	return func(s *CSVStore) {
		if len(values) > 0 {
			s.nanValues = values
		}
	}
}
