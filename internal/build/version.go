package build

// Set through -ldflags "-X github.com/rohmanhakim/jsonld-kit/internal/build.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// FullVersion returns the version string with commit hash appended.
// Format: "Version+Commit" (e.g., "1.0.0+abc123")
func FullVersion() string {
	return Version + "+" + Commit
}

// Info is the line printed by the version command.
func Info() string {
	return "jsonld-kit " + FullVersion() + " (built " + BuildTime + ")"
}
