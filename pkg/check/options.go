package check

// Options holds check-specific option values decoded from configuration.
type Options map[string]any

// Int returns an integer option, or the default.
func (o Options) Int(key string, defaultValue int) int {
	switch val := o[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case uint64:
		return int(val)
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// String returns a string option, or the default.
func (o Options) String(key, defaultValue string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return defaultValue
}

// Bool returns a boolean option, or the default.
func (o Options) Bool(key string, defaultValue bool) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return defaultValue
}

// StringSlice returns a string slice option, or the default.
func (o Options) StringSlice(key string, defaultValue []string) []string {
	switch val := o[key].(type) {
	case []string:
		return val
	case []any:
		// Slices decoded from YAML arrive as []any.
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// ApplyOptions returns chk configured with options.
// Checks that are not Configurable, and empty options, return chk unchanged.
func ApplyOptions(chk Check, options map[string]any) (Check, error) {
	if len(options) == 0 {
		return chk, nil
	}
	configurable, ok := chk.(Configurable)
	if !ok {
		return chk, nil
	}
	return configurable.Configure(Options(options))
}
