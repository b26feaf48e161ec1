package spline

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Compile operation names into a line filter and run it over stdin"
	MsgRootUse   = "spline [flags] <operation>..."

	MsgVersionFormat = "spline %s (commit %s, built %s)\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Read configuration from this file (toml or yaml)"
	MsgFlagList       = "List every operation and capability, then exit"
	MsgFlagExplain    = "Compile the pipeline and describe it without reading input"
	MsgFlagShowConfig = "Print the effective configuration, then exit"
	MsgFlagFormat     = "Output format of --list, --explain and --show-config: text, json, yaml, toml"

	// Error messages
	MsgErrorPrefix = "Error: "
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
