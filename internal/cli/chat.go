package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/heartmind/internal/anthropic"
	"github.com/MikeSquared-Agency/heartmind/internal/config"
	"github.com/MikeSquared-Agency/heartmind/internal/lighting"
	"github.com/MikeSquared-Agency/heartmind/internal/prompt"
	"github.com/MikeSquared-Agency/heartmind/internal/sculpture"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
)

func runChat(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	key, err := resolveAPIKey(cfg, in, out)
	if err != nil {
		return err
	}
	model := cfg.AnthropicModel
	if modelFlag != "" {
		model = modelFlag
	}
	state, err := prompt.ParseInteractionState(stateFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reg := session.NewRegistry(cfg.Clock())
	sc := sculpture.New(reg, anthropic.NewClient(key, model), logger(), sculpture.WithMaxTokens(cfg.MaxTokens))

	r := &repl{
		sc:       sc,
		session:  reg.Create(),
		visitors: visitorsFlag,
		state:    state,
		in:       in,
		out:      out,
	}
	return r.run(ctx)
}

// repl is one interactive chat session.
type repl struct {
	sc       *sculpture.Sculpture
	session  session.State
	visitors int
	state    prompt.InteractionState
	in       *bufio.Reader
	out      io.Writer
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Heart-Mind Sculpture. Share something with the sculpture, or /help.")
	for {
		fmt.Fprint(r.out, "> ")
		line, err := r.in.ReadString('\n')
		text := strings.TrimSpace(line)

		if text != "" {
			quit, cmdErr := r.handle(ctx, text)
			if cmdErr != nil {
				return cmdErr
			}
			if quit {
				return nil
			}
		}

		if err == io.EOF {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// handle runs a slash command or sends text to the sculpture. It reports
// whether the loop should end.
func (r *repl) handle(ctx context.Context, text string) (bool, error) {
	if !strings.HasPrefix(text, "/") {
		return false, r.say(ctx, text)
	}

	fields := strings.Fields(text)
	switch fields[0] {
	case "/quit", "/exit":
		return true, nil
	case "/help":
		fmt.Fprintln(r.out, "/status  /examples  /visitors N  /state first_contact|active|repeat_visitor  /quit")
	case "/status":
		r.printStatus()
	case "/examples":
		for _, ex := range prompt.Examples {
			fmt.Fprintf(r.out, "  %s\n", ex)
		}
	case "/visitors":
		if len(fields) != 2 {
			fmt.Fprintln(r.out, "usage: /visitors N")
			break
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			fmt.Fprintln(r.out, "visitor count must be a positive number")
			break
		}
		r.visitors = n
		fmt.Fprintf(r.out, "visitor count: %d (%s responses)\n", n, prompt.TierFor(n))
	case "/state":
		if len(fields) != 2 {
			fmt.Fprintln(r.out, "usage: /state first_contact|active|repeat_visitor")
			break
		}
		st, err := prompt.ParseInteractionState(fields[1])
		if err != nil {
			fmt.Fprintln(r.out, err)
			break
		}
		r.state = st
		fmt.Fprintf(r.out, "interaction state: %s\n", st)
	default:
		fmt.Fprintf(r.out, "unknown command %s, try /help\n", fields[0])
	}
	return false, nil
}

func (r *repl) say(ctx context.Context, text string) error {
	res, err := r.sc.Turn(ctx, sculpture.Input{
		SessionID:    r.session.ID,
		Text:         text,
		VisitorCount: r.visitors,
		State:        r.state,
	})
	if err != nil {
		return err
	}
	r.session = res.State

	fmt.Fprintf(r.out, "\n%s\n", res.Display)
	if len(res.Cues) > 0 {
		fmt.Fprintln(r.out, "\nLighting cues:")
		for _, c := range res.Cues {
			fmt.Fprintf(r.out, "  %s *%s*\n", swatch(c.Color), c.Text)
		}
	}
	if res.ErrorKind != "" {
		fmt.Fprintf(r.out, "(model call failed: %s)\n", res.ErrorKind)
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *repl) printStatus() {
	st, err := r.sc.Sessions().Get(r.session.ID)
	if err != nil {
		st = r.session
	}
	fmt.Fprintf(r.out, "Mood: %s\n", st.Mood)
	fmt.Fprintf(r.out, "Themes: %s\n", st.Themes)
	fmt.Fprintf(r.out, "Total interactions: %d\n", st.InteractionCount)
	fmt.Fprintf(r.out, "Visitor count: %d  State: %s\n", r.visitors, r.state)
}

func swatch(c lighting.Color) string {
	return "[" + string(c) + "]"
}
