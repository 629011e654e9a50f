package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultProvider phrases messages in plain English.
type DefaultProvider struct {
	titler cases.Caser
}

var _ Provider = (*DefaultProvider)(nil)

// NewDefaultProvider creates the standard English provider.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{titler: cases.Title(language.English)}
}

func (d *DefaultProvider) StartPrompt() string {
	return "Please answer yes or no. Ready to play?"
}

func (d *DefaultProvider) StartAccepted() string {
	return "Excellent. Your adventure begins."
}

func (d *DefaultProvider) StartDeclined() string {
	return "Very well. The adventure begins anyway; there is no other door."
}

func (d *DefaultProvider) ConfirmQuit() string {
	return "Are you sure you want to quit? (yes/no)"
}

func (d *DefaultProvider) QuitFarewell() string {
	return "Thanks for playing. Goodbye."
}

func (d *DefaultProvider) ConfirmRestart() string {
	return "Restart from the beginning? All progress will be lost. (yes/no)"
}

func (d *DefaultProvider) RestartDone() string {
	return "The world re-forms around you, just as it was at the start."
}

func (d *DefaultProvider) Resume() string {
	return "Carrying on, then."
}

func (d *DefaultProvider) CodePrompt(target string) string {
	return fmt.Sprintf("The %s needs a code. What do you try?", target)
}

func (d *DefaultProvider) NotFound(name string) string {
	return fmt.Sprintf("You don't see any %s here.", name)
}

func (d *DefaultProvider) WhichObject(verb string) string {
	return fmt.Sprintf("What do you want to %s?", verb)
}

func (d *DefaultProvider) Taken(name string) string {
	return fmt.Sprintf("%s taken.", d.titler.String(name))
}

func (d *DefaultProvider) AlreadyCarrying(name string) string {
	return fmt.Sprintf("You already have the %s.", name)
}

func (d *DefaultProvider) CannotTake(name string) string {
	return fmt.Sprintf("The %s isn't something you can carry.", name)
}

func (d *DefaultProvider) Dropped(name string) string {
	return fmt.Sprintf("%s dropped.", d.titler.String(name))
}

func (d *DefaultProvider) NotCarrying(name string) string {
	return fmt.Sprintf("You aren't carrying a %s.", name)
}

func (d *DefaultProvider) Inventory(lines []string) string {
	if len(lines) == 0 {
		return "You aren't carrying anything."
	}
	return "You are carrying:\n- " + strings.Join(lines, "\n- ")
}

func (d *DefaultProvider) NothingSpecial(name string) string {
	return fmt.Sprintf("You see nothing special about the %s.", name)
}

func (d *DefaultProvider) CannotGo(direction string) string {
	return fmt.Sprintf("You can't go %s from here.", direction)
}

func (d *DefaultProvider) UnknownVerb(verb string) string {
	return fmt.Sprintf("I don't know how to %s.", verb)
}

func (d *DefaultProvider) NotOpenable(name string) string {
	return fmt.Sprintf("The %s doesn't open.", name)
}

func (d *DefaultProvider) PutSuccess(item, prep, container string) string {
	return fmt.Sprintf("You put the %s %s the %s.", item, prep, container)
}

func (d *DefaultProvider) ItemNotPresent(name string) string {
	return fmt.Sprintf("There's no %s here to move.", name)
}

func (d *DefaultProvider) ContainerNotFound(name string) string {
	return fmt.Sprintf("You don't see any %s to put that in.", name)
}

func (d *DefaultProvider) CircularContainment(name string) string {
	return fmt.Sprintf("The %s can't contain itself.", name)
}

func (d *DefaultProvider) InvalidPreposition(container, prep string) string {
	return fmt.Sprintf("You can't put anything %s the %s.", prep, container)
}

func (d *DefaultProvider) ContainerClosed(name string) string {
	return fmt.Sprintf("The %s is closed.", name)
}

func (d *DefaultProvider) ContainerFull(name string) string {
	return fmt.Sprintf("The %s is full.", name)
}

func (d *DefaultProvider) ItemNotAllowed(item, container string) string {
	return fmt.Sprintf("The %s doesn't belong %s.", item, inPhrase(container))
}

func (d *DefaultProvider) Hint(text string) string {
	return "Hint: " + text
}

func (d *DefaultProvider) NoMoreHints() string {
	return "You're on your own from here."
}

func inPhrase(container string) string {
	return "in the " + container
}
