package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/heartmind/internal/config"
	"github.com/MikeSquared-Agency/heartmind/internal/mood"
	"github.com/MikeSquared-Agency/heartmind/internal/prompt"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "prompt [text]",
		Short: "Print the prompt that would be sent for a message, without calling the model",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPrompt,
	})

	RootCmd.AddCommand(&cobra.Command{
		Use:   "mood",
		Short: "Print the sculpture's current mood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mood.At(config.Load().Clock()())
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", m, m.Description())
			return nil
		},
	})
}

func runPrompt(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	state, err := prompt.ParseInteractionState(stateFlag)
	if err != nil {
		return err
	}

	now := config.Load().Clock()()
	st := session.Advance(session.State{}, text, now)
	p := prompt.Build(prompt.Request{
		Input:            text,
		State:            state,
		Mood:             st.Mood,
		InteractionCount: st.InteractionCount,
		Themes:           st.Themes,
		VisitorCount:     visitorsFlag,
	})

	out := cmd.OutOrStdout()
	if p.Safety {
		fmt.Fprintf(out, "# safety override (%q)\n", p.SafetyPhrase)
	} else {
		fmt.Fprintf(out, "# tier=%s tone=%s mood=%s themes=%s\n", p.Tier, p.Tone, st.Mood, st.Themes)
	}
	fmt.Fprintln(out, prompt.UserMessage(p.Context, text))
	return nil
}
