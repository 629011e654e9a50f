// Package text produces user-facing message phrasing. The engine never
// hard-codes display text; hosts swap the Provider to restyle or
// localize every message.
package text

// Provider supplies all message phrasing consumed by the engine.
type Provider interface {
	// Prompt-state messages.
	StartPrompt() string
	StartAccepted() string
	StartDeclined() string
	ConfirmQuit() string
	QuitFarewell() string
	ConfirmRestart() string
	RestartDone() string
	Resume() string
	CodePrompt(target string) string

	// Resolution and clarification.
	NotFound(name string) string
	WhichObject(verb string) string

	// Built-in verb responses.
	Taken(name string) string
	AlreadyCarrying(name string) string
	CannotTake(name string) string
	Dropped(name string) string
	NotCarrying(name string) string
	Inventory(lines []string) string
	NothingSpecial(name string) string
	CannotGo(direction string) string
	UnknownVerb(verb string) string
	NotOpenable(name string) string

	// Containment violations. Each failure mode phrases distinctly.
	PutSuccess(item, prep, container string) string
	ItemNotPresent(name string) string
	ContainerNotFound(name string) string
	CircularContainment(name string) string
	InvalidPreposition(container, prep string) string
	ContainerClosed(name string) string
	ContainerFull(name string) string
	ItemNotAllowed(item, container string) string

	// Hints.
	Hint(text string) string
	NoMoreHints() string
}
