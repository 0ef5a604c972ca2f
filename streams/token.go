package streams

import (
	"strings"

	"github.com/npillmayer/konzept"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Tokens -----------------------------------------------------------------

// TokType is a category type for a Token. We do not define any constants here,
// as it is up to applications to define them.
type TokType int

// Token is a lexeme read off a token stream, categorized by a TokType.
type Token struct {
	Kind   TokType
	Lexeme string
	Span   Span
}

// --- Lexer ------------------------------------------------------------------

// Lexer produces token iterators over input strings, backed by a lexmachine
// DFA. Create one with NewLexer, then call Tokens for every input to scan.
type Lexer struct {
	LM *lexmachine.Lexer
}

// NewLexer creates a lexer. It receives an init function adding the patterns
// of the language, a list of literals ('[', ';', …), a list of keywords
// ("if", "for", …) and a map for translating token strings to their values.
//
// NewLexer will return an error if compiling the DFA failed.
func NewLexer(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*Lexer, error) {
	lx := &Lexer{}
	lx.LM = lexmachine.NewLexer()
	init(lx.LM)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lx.LM.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		lx.LM.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := lx.LM.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

// Tokens creates a token iterator for a given input.
func (lx *Lexer) Tokens(input string) (*TokenIterator, error) {
	s, err := lx.LM.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &TokenIterator{scanner: s, Error: logError}, nil
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Default error reporting function for token iterators
func logError(e error) {
	tracer().Errorf("token stream error: " + e.Error())
}

// --- Token iterator ---------------------------------------------------------

// TokenIterator reads tokens off a scanned input, one per step. Like
// RuneIterator it is an input iterator: single-pass, with all exhausted
// iterators equal. Scan errors are routed through the Error handler and the
// offending input is skipped.
type TokenIterator struct {
	scanner *lexmachine.Scanner
	curr    Token
	eos     bool
	Error   func(error) // error handler
}

func assertTokenIteratorImplementation() {
	var _ konzept.InputIterator[*TokenIterator, Token] = (*TokenIterator)(nil)
	var _ = konzept.AssertInput[*TokenIterator, Token]()
}

// Next scans the next token and returns true if one is available.
func (it *TokenIterator) Next() bool {
	if it.eos {
		return false
	}
	tok, err, eof := it.scanner.Next()
	for err != nil {
		it.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			it.scanner.TC = ui.FailTC
		}
		tok, err, eof = it.scanner.Next()
	}
	if eof {
		tracer().Debugf("token stream reached end of input")
		it.eos = true
		it.curr = Token{}
		return false
	}
	token := tok.(*lexmachine.Token)
	it.curr = Token{
		Kind:   TokType(token.Type),
		Lexeme: string(token.Lexeme),
		Span:   Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
	tracer().Debugf("read token %d %q %s", it.curr.Kind, it.curr.Lexeme, it.curr.Span)
	return true
}

// Value returns the current token.
func (it *TokenIterator) Value() Token {
	return it.curr
}

// Equal returns true if both positions are exhausted, or if both are the same
// live position.
func (it *TokenIterator) Equal(other *TokenIterator) bool {
	if it.eos || other.eos {
		return it.eos && other.eos
	}
	return it == other
}
