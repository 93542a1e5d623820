package resolve

import (
	"os"
	"strings"
)

// EnvUserAgent is set by registry clients on the processes they spawn,
// e.g. "pnpm/9.1.0 npm/? node/v20.11.1 linux x64". It is consulted for
// diagnostics only and never changes resolution behavior.
const EnvUserAgent = "npm_config_user_agent"

// knownManagers are the registry clients we recognize in a user agent.
var knownManagers = map[string]bool{
	"npm":  true,
	"pnpm": true,
	"yarn": true,
	"bun":  true,
}

// ManagerFromUserAgent extracts the registry client name from a
// user-agent string. Unrecognized or empty agents report as "npm".
func ManagerFromUserAgent(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return "npm"
	}
	name, _, _ := strings.Cut(fields[0], "/")
	if knownManagers[name] {
		return name
	}
	return "npm"
}

// DetectManager infers which registry client invoked this process.
func DetectManager() string {
	return ManagerFromUserAgent(os.Getenv(EnvUserAgent))
}
