package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Handler processes one verb for one player. It returns either concrete
// response text with handled=true (it owns the turn; dispatch stops), or
// handled=false to signal no opinion, letting dispatch proceed to the
// next handler in the chain.
type Handler func(p *world.Player, cmd command.ParsedCommand, api *Facade) (string, bool)

// IntroHandler replaces the built-in yes/no intro exchange. It alone
// decides the outgoing message and whether the session advances to
// playing, enabling multi-step intros.
type IntroHandler func(s *session.Session, input string) (message string, advance bool)

// RegisterVerb binds a handler to a canonical verb, ahead of any built-in
// handler for that verb. Handlers registered earlier run earlier. The
// aliases are folded onto the canonical verb before dispatch.
func (e *Engine) RegisterVerb(verb string, aliases []string, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overrides[verb] = append(e.overrides[verb], h)
	for _, a := range aliases {
		e.verbAliases[a] = verb
	}
}

// SetIntroHandler installs a custom intro handler.
func (e *Engine) SetIntroHandler(h IntroHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.intro = h
}

// dispatch runs the verb's handler chain: override handlers in
// registration order, then the built-in handler. The first handler with
// an opinion owns the turn.
func (e *Engine) dispatch(sess *session.Session, cmd command.ParsedCommand) string {
	verb := cmd.Verb
	if canonical, ok := e.verbAliases[verb]; ok {
		verb = canonical
		cmd.Verb = canonical
	}

	f := &Facade{engine: e, sess: sess}
	for _, h := range e.overrides[verb] {
		if msg, handled := h(sess.Player, cmd, f); handled {
			return msg
		}
	}
	if h, ok := e.builtins[verb]; ok {
		if msg, handled := h(sess.Player, cmd, f); handled {
			return msg
		}
	}
	if verb == "" {
		verb = "do that"
	}
	return e.text.UnknownVerb(verb)
}
