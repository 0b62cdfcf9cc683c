// Package cli implements the heartmind-chat terminal front end.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/heartmind/internal/config"
)

var (
	apiKeyFlag   string
	modelFlag    string
	visitorsFlag int
	stateFlag    string
	verboseFlag  bool
)

// RootCmd is the top-level command. Without a subcommand it starts a chat.
var RootCmd = &cobra.Command{
	Use:          "heartmind-chat",
	Short:        "Talk to the Heart-Mind sculpture from a terminal",
	Long:         "Interactive testing shell for the Heart-Mind sculpture. Type a message, read the reply, see the lighting cues.",
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Anthropic API key (default: $ANTHROPIC_API_KEY, prompted if unset)")
	RootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model id (default: $HEARTMIND_MODEL)")
	RootCmd.PersistentFlags().IntVarP(&visitorsFlag, "visitors", "v", 1, "Visitor interaction count (1 short, 2-3 medium, 4+ long)")
	RootCmd.PersistentFlags().StringVarP(&stateFlag, "state", "s", "first_contact", "Interaction state: first_contact, active, repeat_visitor")
	RootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log pipeline events to stderr")
}

// logger writes JSON logs to stderr, quiet unless --verbose.
func logger() *slog.Logger {
	level := "warn"
	if verboseFlag {
		level = "debug"
	}
	return config.NewLogger(level, os.Stderr)
}

// resolveAPIKey picks the flag, then the environment, then asks on in.
func resolveAPIKey(cfg config.Config, in *bufio.Reader, out io.Writer) (string, error) {
	if apiKeyFlag != "" {
		return apiKeyFlag, nil
	}
	if cfg.AnthropicAPIKey != "" {
		return cfg.AnthropicAPIKey, nil
	}
	fmt.Fprint(out, "Anthropic API key: ")
	line, err := in.ReadString('\n')
	key := strings.TrimSpace(line)
	if key == "" {
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read api key: %w", err)
		}
		return "", fmt.Errorf("an Anthropic API key is required to begin")
	}
	return key, nil
}
