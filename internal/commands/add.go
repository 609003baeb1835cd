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
	"todo/internal/todo"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
// Without a title it inserts the configured task template.
type AddCmd struct {
	flags *pflag.FlagSet
	done  bool
	fav   bool
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "todo add [--done] [--fav] [title...]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.BoolVar(&c.done, "done", false, "mark the new task done")
	fs.BoolVar(&c.fav, "fav", false, "mark the new task favourite")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	tpl := c.template(cfg, args)

	task, err := svc.AddTask(ctx, tpl)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", task.ID)
	}
	return exitcode.Success
}

// template merges the configured template with the title and any flags given.
func (c *AddCmd) template(cfg *config.Config, args []string) todo.Template {
	tpl := cfg.TaskTemplate.Template()
	if title := strings.Join(args, " "); strings.TrimSpace(title) != "" {
		tpl.Name = title
	}
	if c.flags != nil && c.flags.Changed("done") {
		tpl.IsDone = c.done
	}
	if c.flags != nil && c.flags.Changed("fav") {
		tpl.IsFav = c.fav
	}
	return tpl
}
