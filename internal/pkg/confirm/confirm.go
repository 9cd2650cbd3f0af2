// Package confirm abstracts the yes/no gate required before destructive actions.
package confirm

// Confirmer solicits an explicit yes/no decision from the user before a
// destructive action proceeds.
type Confirmer interface {
	// Confirm presents the prompt and returns the user's decision.
	Confirm(prompt string) bool
}

// Func adapts a plain function to the Confirmer interface.
type Func func(prompt string) bool

// Confirm implements the Confirmer interface.
func (f Func) Confirm(prompt string) bool {
	return f(prompt)
}

// Always returns a Confirmer with a fixed answer.
func Always(answer bool) Confirmer {
	return Func(func(string) bool { return answer })
}
