package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/text"
	"github.com/jwebster45206/adventure-engine/pkg/vocab"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Engine processes player input for any number of sessions against one
// shared world. Each command runs synchronously end to end: parse,
// resolve, dispatch, mutate, respond. A single mutex serializes command
// processing, which also serializes mutation of locations shared between
// sessions, preserving the containment invariants.
type Engine struct {
	mu       sync.Mutex
	world    *world.World
	sessions *session.Registry
	text     text.Provider
	logger   *slog.Logger

	overrides   map[string][]Handler
	builtins    map[string]Handler
	verbAliases map[string]string
	intro       IntroHandler

	// highlight is set by handlers through the facade during dispatch
	// of the current command; guarded by mu.
	highlight string
}

// New creates an engine for a built world. A nil provider defaults to
// the standard English one.
func New(w *world.World, provider text.Provider, logger *slog.Logger) *Engine {
	if provider == nil {
		provider = text.NewDefaultProvider()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		world:       w,
		sessions:    session.NewRegistry(w.Start()),
		text:        provider,
		logger:      logger,
		overrides:   make(map[string][]Handler),
		builtins:    builtinHandlers(),
		verbAliases: make(map[string]string),
	}
}

// World returns the engine's world graph.
func (e *Engine) World() *world.World { return e.world }

// Intro returns the message shown to a brand-new session.
func (e *Engine) Intro() string { return e.world.Intro() }

// ProcessInput routes one line of input for a session through the state
// machine and, in the playing state, the command pipeline. It never
// fails: every path returns a textual result, and a failed operation
// leaves world and session state untouched.
func (e *Engine) ProcessInput(sessionID, input string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.Get(sessionID)
	e.highlight = ""

	var msg string
	switch sess.State {
	case session.StateWaitingForStartAnswer:
		msg = e.handleStartAnswer(sess, input)
	case session.StateWaitingForQuitConfirmation:
		msg = e.handleQuitAnswer(sess, input)
	case session.StateWaitingForRestartConfirmation:
		msg = e.handleRestartAnswer(sess, input)
	case session.StateWaitingForUnlockCode, session.StateWaitingForOpenCode:
		msg = e.handleCodeEntry(sess, input)
	default:
		msg = e.play(sess, input)
	}

	res := Result{
		Message:   msg,
		Highlight: e.highlight,
		State:     sess.State,
	}
	if _, alive := e.sessions.Lookup(sessionID); !alive {
		// The session ended this turn; the next input starts fresh.
		res.State = session.StateWaitingForStartAnswer
		return res
	}
	res.Directions = sess.Player.Location().Directions()

	e.logger.Debug("processed input",
		"session_id", sessionID,
		"input", input,
		"state", res.State)
	return res
}

// EndSession discards the session's player state and parser context.
func (e *Engine) EndSession(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions.Remove(sessionID)
}

// handleStartAnswer handles the intro prompt. With a custom intro
// handler installed, it alone decides the message and whether the
// session advances. Otherwise a recognized yes/no token starts play and
// every other input re-prompts.
func (e *Engine) handleStartAnswer(sess *session.Session, input string) string {
	if e.intro != nil {
		msg, advance := e.intro(sess, input)
		if advance {
			sess.State = session.StatePlaying
		}
		return msg
	}

	switch vocab.Normalize(input) {
	case "yes", "y", "yeah", "sure", "ok":
		sess.State = session.StatePlaying
		return e.text.StartAccepted() + "\n\n" + describeLocation(sess.Player.Location())
	case "no", "n", "nope":
		sess.State = session.StatePlaying
		return e.text.StartDeclined() + "\n\n" + describeLocation(sess.Player.Location())
	default:
		return e.text.StartPrompt()
	}
}

// handleQuitAnswer ends the session on yes; anything else resumes play.
func (e *Engine) handleQuitAnswer(sess *session.Session, input string) string {
	if isYes(input) {
		e.sessions.Remove(sess.ID)
		return e.text.QuitFarewell()
	}
	sess.State = session.StatePlaying
	return e.text.Resume()
}

// handleRestartAnswer resets the player and mutable world state to
// initial configuration on yes; anything else resumes play.
func (e *Engine) handleRestartAnswer(sess *session.Session, input string) string {
	if isYes(input) {
		e.world.Reset()
		sess.Player.Reset(e.world.Start())
		sess.Context = session.NewContext()
		sess.HintPhase = 0
		sess.State = session.StatePlaying
		return e.text.RestartDone() + "\n\n" + describeLocation(sess.Player.Location())
	}
	sess.State = session.StatePlaying
	return e.text.Resume()
}

// handleCodeEntry treats the raw input as the code for the pending
// target and re-submits it. The prompt is one-shot: the state returns to
// playing afterward regardless of success.
func (e *Engine) handleCodeEntry(sess *session.Session, input string) string {
	target := sess.PendingTarget
	wasOpen := sess.State == session.StateWaitingForOpenCode
	sess.State = session.StatePlaying
	sess.PendingTarget = nil

	if target == nil {
		return e.text.Resume()
	}

	code := strings.TrimSpace(input)
	var msg string
	if wasOpen {
		_, msg = target.Open(sess.Player, code)
	} else {
		_, msg = target.Unlock(sess.Player, code)
	}
	return msg
}

// play routes input through the ordinary command pipeline: parse, then
// execute the primary command and, for sequences, each remaining raw
// sub-command in order. A sub-command that enters a prompt state stops
// the sequence.
func (e *Engine) play(sess *session.Session, input string) string {
	cmd := command.Parse(input)

	lines := []string{e.execute(sess, cmd)}
	for _, raw := range cmd.Rest {
		if sess.State != session.StatePlaying {
			break
		}
		if _, alive := e.sessions.Lookup(sess.ID); !alive {
			break
		}
		lines = append(lines, e.execute(sess, command.Parse(raw)))
	}
	return strings.Join(lines, "\n")
}

// execute runs one parsed command: state-machine edges for quit and
// restart, then the verb dispatch chain.
func (e *Engine) execute(sess *session.Session, cmd command.ParsedCommand) string {
	sess.Context.UpdateLocation(sess.Player.Location().Key())

	switch cmd.Verb {
	case "quit":
		sess.State = session.StateWaitingForQuitConfirmation
		return e.text.ConfirmQuit()
	case "restart":
		sess.State = session.StateWaitingForRestartConfirmation
		return e.text.ConfirmRestart()
	}
	return e.dispatch(sess, cmd)
}

func isYes(input string) bool {
	switch vocab.Normalize(input) {
	case "yes", "y", "yeah", "sure", "ok":
		return true
	}
	return false
}

// Snapshot captures a session's mutable state for persistence. The
// second return is false when the session does not exist.
func (e *Engine) Snapshot(sessionID string) (*Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions.Lookup(sessionID)
	if !ok {
		return nil, false
	}

	snap := &Snapshot{
		ID:           sess.ID,
		State:        sess.State,
		Location:     sess.Player.Location().Key(),
		Inventory:    sess.Player.InventoryNames(),
		Containment:  make(map[string]string),
		Revealed:     e.world.RevealedItems(),
		HintPhase:    sess.HintPhase,
		LastObjects:  sess.Context.LastObjects(),
		LastLocation: sess.Context.LastLocation(),
		UpdatedAt:    sess.UpdatedAt,
	}
	if sess.PendingTarget != nil {
		snap.PendingTarget = sess.PendingTarget.Name()
		if sess.State == session.StateWaitingForOpenCode {
			snap.PendingKind = "open"
		} else {
			snap.PendingKind = "unlock"
		}
	}
	for _, holder := range sess.Player.Inventory() {
		c := holder.Container()
		if c == nil {
			continue
		}
		for _, contained := range sess.Player.InventoryNames() {
			if c.ContainsItem(contained) {
				snap.Containment[strings.ToLower(contained)] = holder.Name()
			}
		}
	}
	return snap, true
}

// Restore rebuilds a session from a snapshot against the current world.
// Items named in the snapshot inventory are pulled from wherever the
// world currently holds them.
func (e *Engine) Restore(snap *Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	loc, ok := e.world.Location(snap.Location)
	if !ok {
		return fmt.Errorf("snapshot references unknown location %q", snap.Location)
	}

	// Resolve every referenced name before touching world or registry
	// state, so a bad snapshot leaves no half-restored session behind.
	type placement struct {
		item   *world.Item
		holder *world.Location
	}
	placements := make([]placement, 0, len(snap.Inventory))
	for _, name := range snap.Inventory {
		it, holder := e.world.FindItem(name)
		if it == nil {
			return fmt.Errorf("snapshot references unknown item %q", name)
		}
		placements = append(placements, placement{it, holder})
	}

	sess := e.sessions.Get(snap.ID)
	sess.State = snap.State
	sess.HintPhase = snap.HintPhase
	sess.Player.Reset(loc)
	sess.Context = session.NewContext()
	sess.Context.UpdateLocation(snap.LastLocation)
	sess.Context.Remember(snap.LastObjects...)

	for _, p := range placements {
		if p.holder != nil {
			// A carried item that began hidden is still hidden in the
			// fresh world; reveal it so the pull doesn't skip it.
			p.holder.RevealHiddenItemByName(p.item.Name())
			p.holder.RemoveItem(p.item.Name())
		}
		sess.Player.AddItem(p.item)
	}

	for key, names := range snap.Revealed {
		rl, ok := e.world.Location(key)
		if !ok {
			continue
		}
		for _, name := range names {
			rl.RevealHiddenItemByName(name)
		}
	}
	for contained, holderName := range snap.Containment {
		holder := sess.Player.FindItem(holderName)
		if holder == nil || holder.Container() == nil {
			continue
		}
		holder.Container().InsertItem(contained)
		sess.Player.AssignContainer(contained, holder.Container())
	}

	if snap.PendingTarget != "" {
		if o := findOpenable(snap.PendingTarget, loc); o != nil {
			sess.PendingTarget = o
			if snap.PendingKind == "open" {
				sess.State = session.StateWaitingForOpenCode
			} else {
				sess.State = session.StateWaitingForUnlockCode
			}
		} else {
			// The pending prompt cannot be honored; fall back to play.
			sess.State = session.StatePlaying
		}
	}
	return nil
}
