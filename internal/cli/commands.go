package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const helpText = `Commands:
  /help              show this help
  /suggest           pick a suggested question
  /clear             clear the chat history
  /reset             start a new conversation session
  /export [file]     export the transcript (to stdout without a file)
  /analytics         show session analytics
  /intents           list the intents the backend understands
  /reload            reload the backend's rules
  /health            show backend health
  /theme             toggle dark mode
  /quit              exit`

// dispatch executes a slash command. It returns true when the client should
// exit.
func (a *app) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/help":
		fmt.Fprintln(a.out, helpText)

	case "/suggest":
		a.chooseSuggestion()

	case "/clear":
		if a.store.Clear(ctx) {
			a.resetView()
			a.flush()
		}

	case "/reset":
		if err := a.session.ResetSession(ctx); err != nil {
			fmt.Fprintf(a.out, "Reset failed: %v\n", err)
			break
		}
		a.resetView()
		a.flush()

	case "/export":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		a.exportTranscript(path)

	case "/analytics":
		a.showAnalytics(ctx)

	case "/intents":
		a.showIntents(ctx)

	case "/reload":
		if err := a.gateway.ReloadRules(ctx); err != nil {
			fmt.Fprintf(a.out, "Reload failed: %v\n", err)
			break
		}
		fmt.Fprintln(a.out, "Rules reloaded.")

	case "/health":
		a.showHealth(ctx)

	case "/theme":
		a.toggleTheme()

	case "/quit", "/exit":
		return true

	default:
		fmt.Fprintf(a.out, "Unknown command %s. Try /help.\n", cmd)
	}

	return false
}

func (a *app) showAnalytics(ctx context.Context) {
	sessionID := a.session.SessionID()
	if sessionID == "" {
		fmt.Fprintln(a.out, "No active session yet.")
		return
	}

	stats, err := a.gateway.Analytics(ctx, sessionID)
	if err != nil {
		fmt.Fprintf(a.out, "Analytics unavailable: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Session %s\n", stats.SessionID)
	fmt.Fprintf(a.out, "  interactions:      %d\n", stats.TotalInteractions)
	fmt.Fprintf(a.out, "  avg response time: %.1f ms\n", stats.AvgResponseTimeMs)

	if len(stats.IntentDistribution) > 0 {
		intents := make([]string, 0, len(stats.IntentDistribution))
		for intent := range stats.IntentDistribution {
			intents = append(intents, intent)
		}
		sort.Strings(intents)

		fmt.Fprintln(a.out, "  intents:")
		for _, intent := range intents {
			fmt.Fprintf(a.out, "    %s: %d\n", intent, stats.IntentDistribution[intent])
		}
	}
}

func (a *app) showIntents(ctx context.Context) {
	intents, err := a.gateway.Intents(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Intents unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Known intents (%d): %s\n", len(intents), strings.Join(intents, ", "))
}

func (a *app) showHealth(ctx context.Context) {
	health, err := a.gateway.Health(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Backend unreachable: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Status: %s (v%s, store %s, %d intents, up %.0fs)\n",
		health.Status, health.Version, health.Store, health.RulesLoaded, health.Uptime)
}
