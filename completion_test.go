package linenoise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		c := Single("hello")
		assert.True(t, c.IsSingle())
		assert.Equal(t, []string{"hello"}, c.Candidates())
	})

	t.Run("many keeps order", func(t *testing.T) {
		t.Parallel()
		c := Many("b", "a", "c")
		assert.False(t, c.IsSingle())
		assert.Equal(t, []string{"b", "a", "c"}, c.Candidates())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Completion{}.Candidates())
	})

	t.Run("candidates are a copy", func(t *testing.T) {
		t.Parallel()
		c := Many("a", "b")
		got := c.Candidates()
		got[0] = "changed"
		assert.Equal(t, []string{"a", "b"}, c.Candidates())
	})
}

func TestEditorComplete(t *testing.T) {
	t.Parallel()

	t.Run("no provider", func(t *testing.T) {
		t.Parallel()

		e, _ := newForTesting(t, "")
		for range 3 {
			require.NoError(t, e.History().Push("x"))
		}
		got, err := e.Complete("x")
		require.NoError(t, err)
		assert.Empty(t, got, "history must not be used as a completion source")
	})

	t.Run("provider order is preserved", func(t *testing.T) {
		t.Parallel()

		e, _ := newForTesting(t, "", WithCompleter(CompleterFunc(func(input string) Completion {
			return Many(input+"z", input+"a", input+"m")
		})))
		got, err := e.Complete("h")
		require.NoError(t, err)
		assert.Equal(t, []string{"hz", "ha", "hm"}, got)
	})

	t.Run("single candidate", func(t *testing.T) {
		t.Parallel()

		e, _ := newForTesting(t, "", WithCompleter(CompleterFunc(func(string) Completion {
			return Single("hello")
		})))
		got, err := e.Complete("he")
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, got)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()

		e, _ := newForTesting(t, "", WithCompleter(CompleterFunc(func(string) Completion {
			return Many()
		})))
		got, err := e.Complete("he")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid candidate", func(t *testing.T) {
		t.Parallel()

		e, _ := newForTesting(t, "", WithCompleter(CompleterFunc(func(string) Completion {
			return Many("ok", "bad\xff")
		})))
		got, err := e.Complete("o")
		assert.ErrorIs(t, err, ErrEncoding)
		assert.Nil(t, got)
	})

	t.Run("candidate outside the charset", func(t *testing.T) {
		t.Parallel()

		latin1, err := NewCharset("ISO-8859-1")
		require.NoError(t, err)
		e, _ := newForTesting(t, "",
			WithCharset(latin1),
			WithCompleter(CompleterFunc(func(string) Completion {
				return Single("日本")
			})))
		_, err = e.Complete("n")
		assert.ErrorIs(t, err, ErrEncoding)
	})
}

func TestEditorRegisterCompleter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider any
		want     []string
	}{
		{
			name:     "Completer",
			provider: NewFuzzyCompleter([]string{"hello", "world"}),
			want:     []string{"hello"},
		},
		{
			name:     "completion func",
			provider: func(input string) Completion { return Single(input + "llo") },
			want:     []string{"hello"},
		},
		{
			name:     "slice func",
			provider: func(input string) []string { return []string{input + "llo", input + "lp"} },
			want:     []string{"hello", "help"},
		},
		{
			name:     "string func",
			provider: func(input string) string { return strings.ToUpper(input) },
			want:     []string{"HE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newForTesting(t, "")
			require.NoError(t, e.RegisterCompleter(tt.provider))
			got, err := e.Complete("he")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditorRegisterCompleterRejectsNonFunctions(t *testing.T) {
	t.Parallel()

	e, _ := newForTesting(t, "", WithCompleter(CompleterFunc(func(string) Completion {
		return Single("kept")
	})))

	err := e.RegisterCompleter(42)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	got, err := e.Complete("k")
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, got, "a failed registration must keep the previous provider")
}

func TestEditorRegisterCompleterNil(t *testing.T) {
	t.Parallel()

	var nilSliceFunc func(string) []string
	var nilCompleter *fuzzyCompleter

	tests := []struct {
		name     string
		provider any
	}{
		{name: "untyped nil", provider: nil},
		{name: "nil CompleterFunc", provider: CompleterFunc(nil)},
		{name: "nil completion func", provider: (func(string) Completion)(nil)},
		{name: "nil slice func", provider: nilSliceFunc},
		{name: "nil string func", provider: (func(string) string)(nil)},
		{name: "nil pointer Completer", provider: nilCompleter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newForTesting(t, "", WithCompleter(CompleterFunc(func(string) Completion {
				return Single("gone")
			})))
			require.NoError(t, e.RegisterCompleter(tt.provider))

			got, err := e.Complete("g")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestEditorSetCompleterTypedNil(t *testing.T) {
	t.Parallel()

	e, _ := newForTesting(t, "\t\r", WithCompleter(CompleterFunc(nil)))
	got, err := e.Complete("x")
	require.NoError(t, err)
	assert.Empty(t, got)

	e.SetCompleter(CompleterFunc(nil))
	line, ok, err := e.ReadLine("> ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, line)
}
