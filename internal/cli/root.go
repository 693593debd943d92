// Package cli provides the cobra commands for printadmin.
package cli

import (
	gocontext "context"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/ctxutil"
	"github.com/example/printadmin/internal/wire"
)

var (
	configFlag  string
	verboseFlag bool
	actorFlag   string
)

// globalActorID is the operator recorded in the audit log for this invocation.
var globalActorID string

// RegisterGlobalFlags adds --config, --verbose and --actor to root and
// configures the wiring before any subcommand runs.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default ~/.printadmin/config.yaml)")
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log API calls to stderr")
	root.PersistentFlags().StringVar(&actorFlag, "actor", "", "Operator name recorded in the audit log")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		wire.Configure(configFlag, verboseFlag)
	}
}

// GetActorID returns the operator for this invocation: --actor, then the
// config file, then $USER.
func GetActorID() string {
	if globalActorID != "" {
		return globalActorID
	}
	switch {
	case actorFlag != "":
		globalActorID = actorFlag
	case wire.Config().Actor != "":
		globalActorID = wire.Config().Actor
	default:
		globalActorID = os.Getenv("USER")
	}
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	if actor := GetActorID(); actor != "" {
		return ctxutil.WithActorID(ctx, actor)
	}
	return ctx
}
