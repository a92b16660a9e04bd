package linenoise

import "fmt"

// Hint is an annotation drawn to the right of the cursor. It is never part
// of the returned line.
type Hint struct {
	Text  string
	Color Color
	Bold  bool
}

// Hinter produces an inline hint for the current input line.
//
// Hint is called synchronously from inside ReadLine after every edit. It
// returns ok=false when there is nothing to show.
type Hinter interface {
	Hint(input string) (hint string, ok bool)
}

// HinterFunc adapts an ordinary function to the Hinter interface.
type HinterFunc func(input string) (string, bool)

// Hint calls f(input)
func (f HinterFunc) Hint(input string) (string, bool) {
	return f(input)
}

func hinterFromValue(v any) (Hinter, error) {
	if isNilValue(v) {
		return nil, nil
	}
	switch fn := v.(type) {
	case Hinter:
		return fn, nil
	case func(string) (string, bool):
		return HinterFunc(fn), nil
	case func(string) string:
		// An empty string means no hint.
		return HinterFunc(func(input string) (string, bool) {
			s := fn(input)
			return s, s != ""
		}), nil
	}
	return nil, fmt.Errorf("%w: hint provider must be a function of one string, got %T", ErrInvalidArgument, v)
}

// Hint asks the registered hint provider for an annotation for input.
//
// The returned Hint always carries the current hint color and weight, even
// when ok is false, so the caller has consistent defaults. ok is false when
// no provider is registered or the provider has nothing to say. Text that is
// not valid under the editor's charset fails with ErrEncoding.
func (e *Editor) Hint(input string) (Hint, bool, error) {
	hint := Hint{Color: e.hintColor, Bold: e.hintBold}
	if e.hinter == nil {
		return hint, false, nil
	}
	text, ok := e.hinter.Hint(input)
	if !ok {
		return hint, false, nil
	}
	if err := e.charset.validate(text); err != nil {
		return hint, false, fmt.Errorf("hint for %q: %w", input, err)
	}
	hint.Text = text
	return hint, true, nil
}
