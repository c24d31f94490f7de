package config

import "os"

// ExpandEnv expands ${VAR} and $VAR references in YAML content against the
// process environment. Missing variables expand to the empty string;
// validation catches required fields left empty. `$$` escapes a literal `$`.
func ExpandEnv(data []byte) []byte {
	return []byte(os.Expand(string(data), func(name string) string {
		if name == "$" {
			return "$"
		}
		return os.Getenv(name)
	}))
}
