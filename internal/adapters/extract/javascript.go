// Package extract implements tag extractors for the host languages that
// embed GraphQL literals, plus a memoizing decorator shared by parser
// instances.
package extract

import (
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TagExtractor = (*JavaScript)(nil)

// JavaScript extracts graphql`...` tagged template literals from JavaScript
// and TypeScript source. It is a lexical scan, not a full parse: comments,
// string literals, and unrelated template literals are skipped, and each
// literal is attributed to the nearest preceding declaration name.
type JavaScript struct {
	tag string
}

// NewJavaScript creates an extractor recognizing the given tag identifier
// (normally "graphql").
func NewJavaScript(tag string) *JavaScript {
	if tag == "" {
		tag = domain.DefaultMarker
	}
	return &JavaScript{tag: tag}
}

// Extract returns the literal spans found in text, in source order.
func (e *JavaScript) Extract(text, _ string, file domain.File, opts domain.ExtractOptions) ([]domain.LiteralSpan, error) {
	var spans []domain.LiteralSpan

	s := scanner{src: text, tag: e.tag}
	for {
		lit, ok := s.next()
		if !ok {
			break
		}

		name := lit.declName
		if name == "" && opts.ValidateNames {
			return nil, zerr.With(
				zerr.With(domain.ErrExtraction, "path", file.RelPath),
				"offset", lit.offset,
			)
		}

		spans = append(spans, domain.LiteralSpan{
			Text:     lit.text,
			Name:     name,
			FilePath: file.RelPath,
			Offset:   lit.offset,
		})
	}

	return spans, nil
}

// literal is one tagged template found by the scanner.
type literal struct {
	text     string
	declName string
	offset   int
}

// scanner walks JS/TS source tracking enough lexical state to recognize
// tagged templates outside comments and strings.
type scanner struct {
	src string
	tag string
	pos int

	// declName is the identifier of the most recent declaration keyword
	// (const/let/var/function/class) seen before the current position.
	declName string
}

// declKeywords introduce a named declaration whose identifier becomes the
// attribution name for literals that follow it.
var declKeywords = map[string]bool{
	"const":    true,
	"let":      true,
	"var":      true,
	"function": true,
	"class":    true,
}

// next advances to the next tagged template literal, or returns false when
// the source is exhausted.
//
//nolint:cyclop,gocognit // Lexical state machine
func (s *scanner) next() (literal, bool) {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case c == '\'' || c == '"':
			s.skipString(c)
		case c == '`':
			s.skipTemplate()
		case isIdentStart(c):
			ident := s.readIdent()

			if declKeywords[ident] {
				s.declName = s.peekIdent()
				continue
			}

			if ident == s.tag {
				if text, offset, ok := s.readTaggedTemplate(); ok {
					return literal{text: text, declName: s.declName, offset: offset}, true
				}
			}
		default:
			s.pos++
		}
	}
	return literal{}, false
}

func (s *scanner) peek(ahead int) byte {
	if s.pos+ahead < len(s.src) {
		return s.src[s.pos+ahead]
	}
	return 0
}

func (s *scanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

func (s *scanner) skipString(quote byte) {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case quote, '\n':
			s.pos++
			return
		}
		s.pos++
	}
}

// skipTemplate skips an untagged template literal, including nested
// templates inside ${...} interpolations.
func (s *scanner) skipTemplate() {
	s.pos++
	depth := 0
	for s.pos < len(s.src) {
		switch {
		case s.src[s.pos] == '\\':
			s.pos += 2
			continue
		case s.src[s.pos] == '$' && s.peek(1) == '{':
			depth++
			s.pos += 2
			continue
		case s.src[s.pos] == '}' && depth > 0:
			depth--
		case s.src[s.pos] == '`' && depth == 0:
			s.pos++
			return
		}
		s.pos++
	}
}

// readIdent consumes and returns the identifier at the current position.
func (s *scanner) readIdent() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// peekIdent returns the next identifier after whitespace without consuming
// anything past it.
func (s *scanner) peekIdent() string {
	i := s.pos
	for i < len(s.src) && isSpace(s.src[i]) {
		i++
	}
	start := i
	for i < len(s.src) && isIdentPart(s.src[i]) {
		i++
	}
	return s.src[start:i]
}

// readTaggedTemplate consumes the backtick-delimited body following the tag
// identifier. Returns false if the tag is not immediately followed by a
// template literal.
func (s *scanner) readTaggedTemplate() (string, int, bool) {
	i := s.pos
	for i < len(s.src) && isSpace(s.src[i]) {
		i++
	}
	if i >= len(s.src) || s.src[i] != '`' {
		return "", 0, false
	}

	start := i + 1
	j := start
	for j < len(s.src) {
		if s.src[j] == '\\' {
			j += 2
			continue
		}
		if s.src[j] == '`' {
			s.pos = j + 1
			return s.src[start:j], start, true
		}
		j++
	}

	// Unterminated template: consume to EOF, yield nothing.
	s.pos = len(s.src)
	return "", 0, false
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Tag returns the tag identifier the extractor recognizes. The same string
// serves as the parser's candidate marker.
func (e *JavaScript) Tag() string {
	return e.tag
}
