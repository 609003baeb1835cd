package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&NameCmd{})
}

// NameCmd implements the name command.
type NameCmd struct {
	unset bool
}

func (c *NameCmd) Name() string      { return "name" }
func (c *NameCmd) Aliases() []string { return nil }
func (c *NameCmd) Synopsis() string  { return "Set your name" }
func (c *NameCmd) Usage() string     { return "todo name <name...> | todo name --unset" }
func (c *NameCmd) NeedsStore() bool  { return true }

func (c *NameCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.unset, "unset", false, "forget the stored name")
}

func (c *NameCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.Join(args, " ")
	switch {
	case c.unset && len(args) > 0:
		fmt.Fprintln(errOut, "error: cannot use both --unset and a name")
		return exitcode.UserError
	case !c.unset && name == "":
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	if err := svc.SetName(ctx, name); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
