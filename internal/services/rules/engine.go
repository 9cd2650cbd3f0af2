// Package rules implements the pattern-matching response engine for the
// reference backend.
package rules

import (
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Confidence levels reported with responses.
const (
	matchConfidence    = 0.95
	fallbackConfidence = 0.3
)

// emptyResponse is returned for blank input.
const emptyResponse = "Please say something! 😊"

// Rule defines one intent: its match patterns and canned responses.
type Rule struct {
	Intent    string   `yaml:"intent"`
	Patterns  []string `yaml:"patterns"`
	Responses []string `yaml:"responses"`
	Sentiment string   `yaml:"sentiment"`
}

// rulesFile is the on-disk rules document shape.
type rulesFile struct {
	Intents           []Rule   `yaml:"intents"`
	FallbackResponses []string `yaml:"fallback_responses"`
}

// Result is the outcome of processing one message.
type Result struct {
	Response       string
	Intent         string
	Sentiment      string
	MatchedPattern string
	Confidence     float64
}

type compiledRule struct {
	rule     Rule
	patterns []*regexp.Regexp
}

// Engine matches user messages against intent patterns and produces canned
// responses. Safe for concurrent use; Reload swaps the rule set atomically.
type Engine struct {
	mu        sync.RWMutex
	path      string
	logger    zerolog.Logger
	intents   []compiledRule
	fallbacks []string
}

// NewEngine creates an engine from the YAML rules file at path. When the
// file is missing or invalid the built-in default rules are used.
func NewEngine(path string) *Engine {
	e := &Engine{
		path:   path,
		logger: log.With().Str("component", "rules").Logger(),
	}

	if err := e.Reload(); err != nil {
		e.logger.Warn().Err(err).Str("path", path).Msg("falling back to default rules")
		e.loadDefaults()
	}
	return e
}

// Reload re-reads the rules file and swaps the active rule set.
func (e *Engine) Reload() error {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return fmt.Errorf("failed to read rules file: %w", err)
	}

	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse rules file: %w", err)
	}

	intents := e.compile(doc.Intents)

	e.mu.Lock()
	e.intents = intents
	e.fallbacks = doc.FallbackResponses
	e.mu.Unlock()

	e.logger.Info().Int("intents", len(intents)).Msg("rules loaded")
	return nil
}

// compile builds case-insensitive matchers, skipping invalid patterns.
func (e *Engine) compile(ruleList []Rule) []compiledRule {
	compiled := make([]compiledRule, 0, len(ruleList))
	for _, r := range ruleList {
		cr := compiledRule{rule: r}
		for _, p := range r.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				e.logger.Error().Err(err).Str("pattern", p).Msg("invalid rule pattern")
				continue
			}
			cr.patterns = append(cr.patterns, re)
		}
		if len(cr.patterns) > 0 {
			compiled = append(compiled, cr)
		}
	}
	return compiled
}

func (e *Engine) loadDefaults() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.intents = e.compile(defaultRules())
	e.fallbacks = defaultFallbacks()
}

// Process runs one message through the matching pipeline.
func (e *Engine) Process(message string) Result {
	processed := strings.ToLower(strings.TrimSpace(message))
	if processed == "" {
		return Result{Response: emptyResponse, Sentiment: "neutral"}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, cr := range e.intents {
		for _, re := range cr.patterns {
			if re.MatchString(processed) {
				sentiment := cr.rule.Sentiment
				if sentiment == "" {
					sentiment = "neutral"
				}
				return Result{
					Response:       pick(cr.rule.Responses, e.fallbacks),
					Intent:         cr.rule.Intent,
					Sentiment:      sentiment,
					MatchedPattern: re.String(),
					Confidence:     matchConfidence,
				}
			}
		}
	}

	return Result{
		Response:   pick(e.fallbacks, nil),
		Intent:     "fallback",
		Sentiment:  analyzeSentiment(processed),
		Confidence: fallbackConfidence,
	}
}

// Intents returns all intent names in rule order.
func (e *Engine) Intents() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.intents))
	for _, cr := range e.intents {
		names = append(names, cr.rule.Intent)
	}
	return names
}

// RulesLoaded returns the number of active intents.
func (e *Engine) RulesLoaded() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.intents)
}

// pick chooses a random response, falling back to the alternate list.
func pick(responses, fallback []string) string {
	if len(responses) == 0 {
		responses = fallback
	}
	if len(responses) == 0 {
		return "I'm not sure how to respond to that."
	}
	return responses[rand.Intn(len(responses))]
}

var (
	positiveKeywords = []string{"good", "great", "excellent", "happy", "love", "awesome", "wonderful", "fantastic"}
	negativeKeywords = []string{"bad", "terrible", "hate", "awful", "poor", "sad", "angry", "frustrated"}
)

// analyzeSentiment scores the message by keyword counts.
func analyzeSentiment(message string) string {
	positive := 0
	for _, w := range positiveKeywords {
		if strings.Contains(message, w) {
			positive++
		}
	}

	negative := 0
	for _, w := range negativeKeywords {
		if strings.Contains(message, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}
