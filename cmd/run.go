package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aromatt/llstack/internal/script"
)

// NewRunCommand returns the command that executes a stack script.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a stack script",
		Long: `Run a stack script read from file, or from stdin when file is omitted or "-".

Commands, one per line:
  push V...  push each value
  pop        remove and print the top value
  peek       print the top value
  set V      replace the top value
  len        print the number of values
  print      print the stack as head->...
  clear      remove every value
  drain      pop and print every value

Lines starting with # are comments. Lines may be up to 16 MiB long.`,
		RunE: runScript,
		Args: cobra.MaximumNArgs(1),
	}

	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var in io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "failed to open script")
		}
		defer f.Close()
		in = f
	}

	log.With(zap.String("source", name))

	cmds, err := script.Parse(in)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}
	log.Debug("parsed script", zap.Int("commands", len(cmds)))

	interp := script.NewInterpreter(cmd.OutOrStdout(), script.WithLogger(log))
	if err := interp.Run(cmd.Context(), cmds); err != nil {
		log.Error("script failed", zap.Error(err))
		return err
	}

	for op, n := range interp.Counts() {
		log.Debug("executed", zap.String("op", string(op)), zap.Uint64("count", n))
	}
	return nil
}
