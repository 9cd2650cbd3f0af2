package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/intentbot/chat-client/internal/config"
	"github.com/intentbot/chat-client/internal/pkg/confirm"
	"github.com/intentbot/chat-client/internal/prefs"
	"github.com/intentbot/chat-client/internal/services/conversation"
	"github.com/intentbot/chat-client/internal/services/exchange"
	"github.com/intentbot/chat-client/internal/services/gateway"
	"github.com/intentbot/chat-client/internal/services/session"
	"github.com/intentbot/chat-client/internal/services/suggest"
)

// app wires the chat client services behind the interactive prompt.
type app struct {
	cfg      *config.Config
	gateway  gateway.Client
	store    *conversation.Store
	session  *session.Controller
	exchange *exchange.Orchestrator
	channel  *suggest.Channel
	prefs    *prefs.Store

	in  *bufio.Scanner
	out io.Writer

	settings prefs.Preferences

	// pending holds a question delivered through the suggestion channel,
	// waiting to be sent as the next user message.
	pending string

	// lastPrinted tracks the highest message ID already rendered.
	lastPrinted int64
}

// newApp builds the full client wiring against the configured backend.
func newApp(cfg *config.Config, in io.Reader, out io.Writer) (*app, error) {
	gw, err := gateway.NewClient(&gateway.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway client: %w", err)
	}

	a := &app{
		cfg:     cfg,
		gateway: gw,
		channel: suggest.NewChannel(),
		prefs:   prefs.NewStore(cfg.Prefs.Path),
		in:      bufio.NewScanner(in),
		out:     out,
	}

	confirmer := confirm.Func(a.askYesNo)

	store, err := conversation.NewStore(&conversation.Config{
		Gateway:   gw,
		Confirmer: confirmer,
	})
	if err != nil {
		return nil, err
	}
	a.store = store

	ctrl, err := session.NewController(&session.Config{
		Gateway:   gw,
		Store:     store,
		Confirmer: confirmer,
	})
	if err != nil {
		return nil, err
	}
	a.session = ctrl
	store.BindSession(ctrl)

	orch, err := exchange.NewOrchestrator(&exchange.Config{
		Gateway:     gw,
		Store:       store,
		Session:     ctrl,
		TypingDelay: cfg.Chat.TypingDelay,
		OnTyping:    a.showTyping,
	})
	if err != nil {
		return nil, err
	}
	a.exchange = orch

	// The channel owns delivery; the prompt loop picks the question up as
	// its next input.
	a.channel.Subscribe(func(question string) {
		a.pending = question
	})

	settings, err := a.prefs.Load()
	if err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
	a.settings = settings

	return a, nil
}

// run starts the session and enters the prompt loop.
func (a *app) run(ctx context.Context) error {
	if err := a.session.InitializeSession(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not reach the backend at %s.\n", a.cfg.Backend.URL)
		fmt.Fprintln(a.out, "Session setup will be retried before your next message.")
	}
	a.flush()

	for {
		line, ok := a.readInput()
		if !ok {
			return nil
		}

		if strings.HasPrefix(line, "/") {
			if quit := a.dispatch(ctx, line); quit {
				return nil
			}
			continue
		}

		if max := a.cfg.Chat.MaxMessageLength; max > 0 && len(line) > max {
			fmt.Fprintf(a.out, "Message too long (max %d characters).\n", max)
			continue
		}

		// A failed startup leaves no session; messages wait until one exists.
		if a.session.SessionID() == "" {
			if err := a.session.InitializeSession(ctx); err != nil {
				fmt.Fprintln(a.out, "Backend still unreachable. Try again in a moment.")
				continue
			}
			a.flush()
		}

		a.exchange.SendUserMessage(ctx, line)
		a.flush()
	}
}

// readInput returns the next line to process, preferring a question delivered
// through the suggestion channel over the terminal.
func (a *app) readInput() (string, bool) {
	if a.pending != "" {
		line := a.pending
		a.pending = ""
		fmt.Fprintf(a.out, "> %s\n", line)
		return line, true
	}

	fmt.Fprint(a.out, "> ")
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// flush renders every message not yet printed, in store order.
func (a *app) flush() {
	for _, m := range a.store.Messages() {
		if m.ID <= a.lastPrinted {
			continue
		}
		fmt.Fprintf(a.out, "%s: %s\n", m.Author(), m.Text)
		a.lastPrinted = m.ID
	}
}

// resetView forces the next flush to reprint the whole history.
func (a *app) resetView() {
	a.lastPrinted = 0
}

func (a *app) showTyping(active bool) {
	if active {
		fmt.Fprintln(a.out, "Bot is typing...")
	}
}

// askYesNo prompts on the terminal and treats anything but y/yes as no.
func (a *app) askYesNo(prompt string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)
	if !a.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(a.in.Text()))
	return answer == "y" || answer == "yes"
}

// chooseSuggestion prints the catalog and publishes the picked question.
func (a *app) chooseSuggestion() {
	catalog := suggest.DefaultCatalog()

	n := 0
	questions := make([]string, 0, 16)
	for _, cat := range catalog {
		fmt.Fprintf(a.out, "\n%s\n", cat.Title)
		for _, q := range cat.Questions {
			n++
			questions = append(questions, q)
			fmt.Fprintf(a.out, "  %2d. %s\n", n, q)
		}
	}

	fmt.Fprint(a.out, "\nPick a question (number, empty to cancel): ")
	if !a.in.Scan() {
		return
	}
	raw := strings.TrimSpace(a.in.Text())
	if raw == "" {
		return
	}

	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 1 || idx > len(questions) {
		fmt.Fprintln(a.out, "Invalid choice.")
		return
	}

	a.channel.Publish(questions[idx-1])
}

// exportTranscript writes the history to the given path, or prints it when no
// path is given.
func (a *app) exportTranscript(path string) {
	text := a.store.ExportAsText()
	if path == "" {
		fmt.Fprintln(a.out, text)
		return
	}

	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Transcript written to %s\n", path)
}

// toggleTheme flips the persisted dark mode preference.
func (a *app) toggleTheme() {
	a.settings.DarkMode = !a.settings.DarkMode
	if err := a.prefs.Save(a.settings); err != nil {
		fmt.Fprintf(a.out, "Could not save preferences: %v\n", err)
		return
	}
	mode := "light"
	if a.settings.DarkMode {
		mode = "dark"
	}
	fmt.Fprintf(a.out, "Theme set to %s mode.\n", mode)
}
