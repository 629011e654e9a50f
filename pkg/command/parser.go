package command

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/vocab"
)

// sequenceWord separates a sequence of commands when it appears as a token.
const sequenceWord = "then"

// conjunctionWord separates direct objects within one object phrase.
const conjunctionWord = "and"

// Parse turns a raw input line into a ParsedCommand. Parsing never fails:
// ambiguous or unrecognized structure degrades to a verb with no objects.
func Parse(input string) ParsedCommand {
	norm := vocab.Normalize(input)
	cmd := ParsedCommand{Type: TypeSingle, Original: input}

	if norm == "" {
		cmd.Implied = true
		return cmd
	}

	primary, rest := splitSequence(norm)
	if len(rest) > 0 {
		cmd.Type = TypeSequence
		cmd.Rest = rest
	}

	tokens := strings.Fields(primary)

	// A bare direction is implicit movement.
	if len(tokens) == 1 {
		if dir, ok := vocab.CanonicalDirection(tokens[0]); ok {
			cmd.Verb = "go"
			cmd.DirectObjects = []string{dir}
			return cmd
		}
	}

	var remainder []string
	if len(tokens) >= 2 {
		if v, ok := vocab.CanonicalPhrase(tokens[0], tokens[1]); ok {
			cmd.Verb = v
			remainder = tokens[2:]
		}
	}
	if cmd.Verb == "" {
		cmd.Verb = vocab.CanonicalVerb(tokens[0])
		remainder = tokens[1:]
	}

	if len(remainder) == 0 {
		cmd.Implied = true
		return cmd
	}

	// Movement binds a leading direction as the direct object; the
	// remainder is never rescanned for prepositions. A token that could
	// be either a direction or a preposition stays a direction here.
	if vocab.IsMovementVerb(cmd.Verb) {
		if dir, ok := vocab.CanonicalDirection(remainder[0]); ok {
			cmd.DirectObjects = []string{dir}
			return cmd
		}
	}

	direct, prep, indirect := splitPreposition(cmd.Verb, remainder)
	cmd.Preposition = prep
	cmd.DirectObjects = splitConjunction(direct)
	cmd.IndirectObjects = splitConjunction(indirect)
	if len(cmd.DirectObjects) > 1 && cmd.Type != TypeSequence {
		cmd.Type = TypeConjunction
	}
	cmd.Implied = len(cmd.DirectObjects) == 0
	return cmd
}

// splitSequence splits a normalized line into the primary segment and the
// ordered trailing raw segments, on ";" or the word "then".
func splitSequence(norm string) (string, []string) {
	var segments []string
	for _, part := range strings.Split(norm, ";") {
		tokens := strings.Fields(part)
		start := 0
		for i, tok := range tokens {
			if tok == sequenceWord {
				if seg := strings.Join(tokens[start:i], " "); seg != "" {
					segments = append(segments, seg)
				}
				start = i + 1
			}
		}
		if seg := strings.Join(tokens[start:], " "); seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return "", nil
	}
	return segments[0], segments[1:]
}

// splitPreposition splits the remainder at the first recognized preposition
// token. A token that is a direction word in movement-verb context is never
// reinterpreted as a preposition.
func splitPreposition(verb string, remainder []string) (direct, prep, indirect string) {
	for i, tok := range remainder {
		if !vocab.IsPreposition(tok) {
			continue
		}
		if vocab.IsMovementVerb(verb) && vocab.IsDirection(tok) {
			continue
		}
		return strings.Join(remainder[:i], " "), tok, strings.Join(remainder[i+1:], " ")
	}
	return strings.Join(remainder, " "), "", ""
}

// splitConjunction splits an object phrase on "and" or "&" into individual
// object names, stripping leading articles from each.
func splitConjunction(phrase string) []string {
	if phrase == "" {
		return nil
	}
	tokens := strings.Fields(phrase)
	var objects []string
	start := 0
	flush := func(end int) {
		name := vocab.StripArticles(strings.Join(tokens[start:end], " "))
		if name != "" {
			objects = append(objects, name)
		}
	}
	for i, tok := range tokens {
		if tok == conjunctionWord || tok == "&" {
			flush(i)
			start = i + 1
		}
	}
	flush(len(tokens))
	return objects
}
