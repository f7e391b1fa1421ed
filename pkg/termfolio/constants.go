package termfolio

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Session or scripted run completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitCommandFailed = 13 // A scripted command reported failure
	ExitContentError  = 14 // Content could not be loaded into the virtual filesystem
)

const (
	// User is the fixed account name shown in the prompt and by whoami.
	User = "visitor"

	// DefaultHost is the host segment of the prompt when none is configured.
	DefaultHost = "termfolio"

	// ShellName is reported by neofetch.
	ShellName = "termfolio-sh"

	// RootName is the sentinel name of the filesystem root.
	RootName = "~"

	// MarkdownExt marks documents that cat renders instead of printing raw.
	MarkdownExt = ".md"
)
