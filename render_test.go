package autoprompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options []Option
		keys    []Key
		want    string
	}{
		{
			name: "empty",
			want: "│\n◆  Name\n│  \n└\n",
		},
		{
			name:    "placeholder",
			options: []Option{WithPlaceholder("Ada")},
			want:    "│\n◆  Name\n│  Ada\n└\n",
		},
		{
			name: "typed text",
			keys: Keys("Grace"),
			want: "│\n◆  Name\n│  Grace\n└\n",
		},
		{
			name:    "suggestions without highlight",
			options: []Option{WithSuggestions("rust", "ruby", "go")},
			keys:    Keys("ru"),
			want:    "│\n◆  Name\n│  ru\n└  [Tab/↑/↓](Suggestions)\n    rust\n    ruby\n",
		},
		{
			name:    "highlighted suggestion",
			options: []Option{WithSuggestions("rust", "ruby", "go")},
			keys:    []Key{Char('r'), {Code: KeyTab}},
			want:    "│\n◆  Name\n│  rust\n└  [Tab/↑/↓](Suggestions)\n  ▶ rust\n    ruby\n",
		},
		{
			name:    "multiline editing",
			options: []Option{WithMultiline()},
			keys:    []Key{Char('a'), {Code: KeyEnter}, Char('b')},
			want:    "│\n◆  Name\n│  a\n│  b\n└  [Esc](Preview)\n",
		},
		{
			name:    "multiline preview",
			options: []Option{WithMultiline()},
			keys:    []Key{Char('a'), {Code: KeyEscape}},
			want:    "│\n◆  Name\n│  a\n└  [Enter](Submit)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := NewTextInput("Name", append([]Option{WithTheme(ThemePlain)}, tt.options...)...)
			state := Active[string]()
			for _, key := range tt.keys {
				state = in.Handle(key)
			}
			assert.Equal(t, tt.want, in.Render(state))
		})
	}
}

func TestRenderStates(t *testing.T) {
	t.Parallel()

	t.Run("error replaces footer and hides suggestions", func(t *testing.T) {
		t.Parallel()

		in := NewTextInput("Name", WithTheme(ThemePlain), WithSuggestions("rust"),
			WithValidator(MinLength(5)))
		state := typeKeys(t, in, Char('r'), keyEnter)
		require.Equal(t, StateError, state.Kind)
		assert.Equal(t, "│\n▲  Name\n│  r\n└  must be at least 5 characters\n", in.Render(state))
	})

	t.Run("submit", func(t *testing.T) {
		t.Parallel()

		in := NewTextInput("Name", WithTheme(ThemePlain))
		state := typeKeys(t, in, append(Keys("Ada"), keyEnter)...)
		require.Equal(t, StateSubmit, state.Kind)
		assert.Equal(t, "│\n◇  Name\n│  Ada\n│\n", in.Render(state))
	})

	t.Run("cancel hides placeholder", func(t *testing.T) {
		t.Parallel()

		in := NewTextInput("Name", WithTheme(ThemePlain), WithPlaceholder("Ada"))
		state := in.Handle(keyEscape)
		require.True(t, state.Cancelled())
		assert.Equal(t, "│\n■  Name\n│  \n│\n", in.Render(state))
	})

	t.Run("preview switch renders as active", func(t *testing.T) {
		t.Parallel()

		in := NewTextInput("Name", WithTheme(ThemePlain), WithMultiline())
		in.Handle(Char('a'))
		state := in.Handle(keyEscape)
		require.True(t, state.IsPreviewSwitch())
		assert.True(t, strings.HasPrefix(in.Render(state), "│\n◆  Name\n"))
	})
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	calls := 0
	in := NewTextInput("Language",
		WithSuggestFunc(func(query string) ([]string, error) {
			calls++
			return []string{query + "-1", query + "-2"}, nil
		}),
	)
	state := typeKeys(t, in, Char('x'), keyDown)

	first := in.Render(state)
	second := in.Render(state)
	assert.Equal(t, first, second)
	assert.Equal(t, "x-1", in.Value())
	assert.Equal(t, 0, in.Highlighted())
	assert.Positive(t, calls)
}

func TestRenderColorSchemeCursor(t *testing.T) {
	t.Parallel()

	in := NewTextInput("Name")
	state := typeKeys(t, in, Char('a'), Char('b'), Key{Code: KeyLeft})
	frame := in.Render(state)

	assert.Contains(t, frame, "\x1b[7mb\x1b[27m", "the character under the cursor is reversed")
	assert.Contains(t, frame, ThemeDefault.Bar.ToANSI()+symbolBar+Reset())

	state = in.Handle(keyEnter)
	assert.NotContains(t, in.Render(state), "\x1b[7m", "no cursor once submitted")
}

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "plain", color: Color{R: 1, G: 2, B: 3}, want: "\x1b[38;2;1;2;3m"},
		{name: "bold", color: Color{R: 255, G: 0, B: 0, Bold: true}, want: "\x1b[1;38;2;255;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.ToANSI())
		})
	}
	assert.Equal(t, "\x1b[0m", Reset())
}

func TestColorSchemeMultilineGutter(t *testing.T) {
	t.Parallel()

	got := ThemeDefault.Input(Status{Kind: StateSubmit}, InputText{Before: "a\nb"})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, ThemeDefault.Submit.ToANSI()+symbolBar), "line %q", line)
	}
}

func TestBuiltinThemes(t *testing.T) {
	t.Parallel()

	for _, theme := range []*ColorScheme{ThemeDefault, ThemeDark, ThemeAccessible, ThemeDracula, ThemeMonokai, ThemePlain} {
		t.Run(theme.Name, func(t *testing.T) {
			t.Parallel()

			in := NewTextInput("Name", WithTheme(theme), WithSuggestions("rust"))
			state := typeKeys(t, in, Char('r'))
			frame := in.Render(state)
			assert.Contains(t, frame, "Name")
			assert.Contains(t, frame, "rust")
		})
	}
}
