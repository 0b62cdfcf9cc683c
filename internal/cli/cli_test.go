package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/heartmind/internal/anthropic"
	"github.com/MikeSquared-Agency/heartmind/internal/config"
	"github.com/MikeSquared-Agency/heartmind/internal/prompt"
	"github.com/MikeSquared-Agency/heartmind/internal/sculpture"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
)

type echoLLM struct {
	last string
}

func (e *echoLLM) Complete(ctx context.Context, system string, messages []anthropic.Message, maxTokens int) (string, error) {
	e.last = messages[0].Content
	return "*angry red energy* Someone took my wheels. I am not disposable.", nil
}

func newREPL(input string) (*repl, *bytes.Buffer, *echoLLM) {
	reg := session.NewRegistry(nil)
	llm := &echoLLM{}
	sc := sculpture.New(reg, llm, slog.New(slog.NewTextHandler(io.Discard, nil)))
	out := &bytes.Buffer{}
	return &repl{
		sc:       sc,
		session:  reg.Create(),
		visitors: 1,
		state:    prompt.StateFirstContact,
		in:       bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}, out, llm
}

func TestREPL_Conversation(t *testing.T) {
	r, out, llm := newREPL("My bike got stolen\n/visitors 4\n/state repeat_visitor\nstill mad\n/status\n/quit\nnever sent\n")

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Someone took my wheels. I am not disposable.",
		"[red] *angry red energy*",
		"visitor count: 4 (long responses)",
		"interaction state: repeat_visitor",
		"Total interactions: 2",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(llm.last, "never sent") {
		t.Error("input after /quit must not be sent")
	}
	if !strings.Contains(llm.last, prompt.TierLong.Instruction()) || !strings.Contains(llm.last, "Current state: repeat_visitor") {
		t.Errorf("second turn should use updated settings:\n%s", llm.last)
	}
	if r.session.InteractionCount != 2 {
		t.Errorf("expected 2 interactions, got %d", r.session.InteractionCount)
	}
}

func TestREPL_CommandErrors(t *testing.T) {
	r, out, _ := newREPL("/visitors zero\n/visitors\n/state sleeping\n/bogus\n/examples\n")

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"visitor count must be a positive number",
		"usage: /visitors N",
		`unknown interaction state "sleeping"`,
		"unknown command /bogus",
		prompt.Examples[0],
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if r.visitors != 1 || r.state != prompt.StateFirstContact {
		t.Errorf("invalid commands must not change settings: %d %s", r.visitors, r.state)
	}
}

func TestREPL_EOFWithoutNewline(t *testing.T) {
	r, out, _ := newREPL("hello there")
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "I am not disposable.") {
		t.Errorf("expected final line to be processed:\n%s", out.String())
	}
}

func TestResolveAPIKey(t *testing.T) {
	defer func() { apiKeyFlag = "" }()

	apiKeyFlag = "flag-key"
	key, err := resolveAPIKey(config.Config{AnthropicAPIKey: "env-key"}, bufio.NewReader(strings.NewReader("")), io.Discard)
	if err != nil || key != "flag-key" {
		t.Errorf("expected flag key, got %q %v", key, err)
	}

	apiKeyFlag = ""
	key, err = resolveAPIKey(config.Config{AnthropicAPIKey: "env-key"}, bufio.NewReader(strings.NewReader("")), io.Discard)
	if err != nil || key != "env-key" {
		t.Errorf("expected env key, got %q %v", key, err)
	}

	var prompted bytes.Buffer
	key, err = resolveAPIKey(config.Config{}, bufio.NewReader(strings.NewReader("  typed-key \n")), &prompted)
	if err != nil || key != "typed-key" {
		t.Errorf("expected typed key, got %q %v", key, err)
	}
	if !strings.Contains(prompted.String(), "API key") {
		t.Error("expected interactive prompt")
	}

	if _, err := resolveAPIKey(config.Config{}, bufio.NewReader(strings.NewReader("\n")), io.Discard); err == nil {
		t.Error("expected error when no key is given")
	}
}

func TestPromptCommand(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"prompt", "--visitors", "1", "My", "bike", "got", "stolen"})
	defer RootCmd.SetArgs(nil)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "tier=short") || strings.Contains(got, "safety override") {
		t.Errorf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "User input: My bike got stolen") {
		t.Errorf("expected user message in output:\n%s", got)
	}
}

func TestPromptCommand_Safety(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"prompt", "I", "want", "to", "die"})
	defer RootCmd.SetArgs(nil)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "CRITICAL SAFETY PROTOCOL") {
		t.Errorf("expected safety prompt:\n%s", out.String())
	}
}
