package version

// Set at build time with -ldflags "-X github.com/idilsaglam/todo/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)
