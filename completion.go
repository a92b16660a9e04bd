package linenoise

import (
	"fmt"
	"reflect"
)

// Completion is the result of a completion provider: either a single
// candidate or an ordered list of candidates. The zero value offers nothing.
type Completion struct {
	single   string
	many     []string
	isSingle bool
}

// Single returns a completion with exactly one candidate, typically a unique match.
func Single(candidate string) Completion {
	return Completion{single: candidate, isSingle: true}
}

// Many returns a completion offering candidates in the given order.
func Many(candidates ...string) Completion {
	return Completion{many: candidates}
}

// IsSingle reports whether c was built with Single
func (c Completion) IsSingle() bool {
	return c.isSingle
}

// Candidates returns the candidates as a slice. A single candidate becomes a
// one-element slice.
func (c Completion) Candidates() []string {
	if c.isSingle {
		return []string{c.single}
	}
	return append([]string(nil), c.many...)
}

// Completer produces completion candidates for the current input line.
//
// Complete is called synchronously from inside ReadLine every time the user
// presses Tab. It must not call ReadLine itself. Candidates replace the
// whole line when selected, so they usually repeat the part of the input
// they complete.
type Completer interface {
	Complete(input string) Completion
}

// CompleterFunc adapts an ordinary function to the Completer interface.
type CompleterFunc func(input string) Completion

// Complete calls f(input)
func (f CompleterFunc) Complete(input string) Completion {
	return f(input)
}

// completerFromValue converts the loosely typed providers accepted by
// RegisterCompleter into a Completer.
func completerFromValue(v any) (Completer, error) {
	if isNilValue(v) {
		return nil, nil
	}
	switch fn := v.(type) {
	case Completer:
		return fn, nil
	case func(string) Completion:
		return CompleterFunc(fn), nil
	case func(string) []string:
		return CompleterFunc(func(input string) Completion {
			return Many(fn(input)...)
		}), nil
	case func(string) string:
		return CompleterFunc(func(input string) Completion {
			return Single(fn(input))
		}), nil
	}
	return nil, fmt.Errorf("%w: completion provider must be a function of one string, got %T", ErrInvalidArgument, v)
}

// isNilValue reports whether v is nil or a typed nil such as CompleterFunc(nil)
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Complete asks the registered completion provider for candidates for input.
//
// Without a provider the result is empty and no error is returned. The
// candidates keep the provider's order. If any candidate is not valid text
// under the editor's charset the whole attempt fails with ErrEncoding.
func (e *Editor) Complete(input string) ([]string, error) {
	if e.completer == nil {
		return nil, nil
	}
	candidates := e.completer.Complete(input).Candidates()
	if len(candidates) == 0 {
		return nil, nil
	}
	for _, candidate := range candidates {
		if err := e.charset.validate(candidate); err != nil {
			return nil, fmt.Errorf("completion for %q: %w", input, err)
		}
	}
	return candidates, nil
}
