package exporters

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// placeholder substituted for "$$" while expanding, then turned back into a
// literal dollar. NUL bytes cannot appear in an endpoint string.
const dollarSentinel = "\x00EXECWRAP_EXPORTER_DOLLAR\x00"

// ExpandEnvStrict expands environment variables in s the way os.ExpandEnv
// does, with one difference: a `${VAR}` reference to a variable missing from
// the environment is an error instead of silently becoming "". All missing
// names are collected into one error. `$$` escapes a literal `$`.
func ExpandEnvStrict(s string) (string, error) {
	s = strings.ReplaceAll(s, "$$", dollarSentinel)

	var missing []string
	for _, match := range envVarPattern.FindAllStringSubmatch(s, -1) {
		if _, ok := os.LookupEnv(match[1]); !ok {
			missing = append(missing, match[1])
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		missing = dedupe(missing)
		return "", fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	s = os.ExpandEnv(s)
	return strings.ReplaceAll(s, dollarSentinel, "$"), nil
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(sorted []string) []string {
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// resolveEndpoint returns the first configured endpoint among the given
// environment variables, with ${VAR} references expanded. Deployment configs
// commonly template collector addresses, so unresolved references fail loudly
// instead of dialing a literal "${HOST}". Returns "" when no variable is set.
func resolveEndpoint(vars ...string) (string, error) {
	for _, name := range vars {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		endpoint, err := ExpandEnvStrict(raw)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return endpoint, nil
	}
	return "", nil
}
