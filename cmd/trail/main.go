// Command trail inspects route files and replays navigation scripts against
// an in-memory window, printing the history and surface hierarchy as it goes.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/trail/pkg/trail"
	"github.com/BrandonKowalski/trail/pkg/trail/config"
	"github.com/BrandonKowalski/trail/pkg/trail/constants"
)

var (
	flagLang      string
	flagLogLevel  string
	flagAutoFlush bool
)

func newRootCmd(msgs *messages) *cobra.Command {
	root := &cobra.Command{
		Use:           "trail",
		Short:         msgs.get("RootShort", nil),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagLogLevel != "" {
				trail.SetRawLogLevel(flagLogLevel)
				trail.SetEngineLogLevel(trail.ParseLogLevel(flagLogLevel))
			}
		},
	}
	root.PersistentFlags().StringVar(&flagLang, "lang", "", "message language (BCP 47 tag)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "engine log level (debug, info, warn, error)")

	checkCmd := &cobra.Command{
		Use:   "check <routes file>",
		Short: msgs.get("CheckShort", nil),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), msgs, args[0])
		},
	}

	replayCmd := &cobra.Command{
		Use:   "replay <routes file> <script>",
		Short: msgs.get("ReplayShort", nil),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), msgs, args[0], args[1], flagAutoFlush)
		},
	}
	replayCmd.Flags().BoolVar(&flagAutoFlush, "auto-flush", true, "finish animations after every command")

	root.AddCommand(checkCmd, replayCmd)
	return root
}

func runCheck(out io.Writer, msgs *messages, path string) error {
	file, err := config.Load(path)
	if err != nil {
		return err
	}

	s, err := newSession(io.Discard, msgs, file, true)
	if err != nil {
		return err
	}

	patterns := s.nav.Patterns()
	fmt.Fprintln(out, okStyle.Render(msgs.get("RoutesValid", map[string]any{"Count": len(patterns)})))
	for _, p := range patterns {
		fmt.Fprintln(out, sectionStyle.Render(p))
	}
	return nil
}

func runReplay(out io.Writer, msgs *messages, routesPath, scriptPath string, autoFlush bool) error {
	file, err := config.Load(routesPath)
	if err != nil {
		return err
	}

	script, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer script.Close()

	s, err := newSession(out, msgs, file, autoFlush)
	if err != nil {
		return err
	}
	return s.run(script)
}

// langFromArgs finds --lang before cobra parses flags, since command help
// text is localized while the command tree is built.
func langFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
		if lang, ok := strings.CutPrefix(arg, "--lang="); ok {
			return lang
		}
	}
	return os.Getenv(constants.LangEnvVar)
}

func main() {
	defer trail.Close()

	msgs, err := newMessages(langFromArgs(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	if err := newRootCmd(msgs).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
