package preload

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Serve the markdown slots of the pipeline presentation"
	MsgListShort       = "List all registered slots"
	MsgListLong        = "List displays every slot in the content registry with its size."
	MsgShowShort       = "Show the content of a slot"
	MsgCheckShort      = "Check that slots are registered"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics. Every slot is a topic."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "preload version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrSlotsMissing = "%d of %d slots missing"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/preload/config.toml)"
	MsgFlagSource      = "Directory or bundle file to load slots from instead of the embedded catalog"
	MsgFlagRaw         = "Print the markdown verbatim, without rendering"
	MsgFlagPlaceholder = "Text to print when the slot is missing"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
