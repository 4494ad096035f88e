package autoprompt

import (
	"log/slog"
)

// config holds the settings collected from Options.
type config struct {
	placeholder         string
	placeholderSet      bool
	defaultValue        *string
	required            bool
	multiline           bool
	validateOnEnter     Validator
	validateInteractive Validator
	suggester           Suggester
	autocompleteOnEnter bool
	theme               Theme
	keyMap              *KeyMap
	logger              *slog.Logger
	history             *HistoryManager
}

func defaultConfig() config {
	return config{
		required: true,
		theme:    ThemeDefault,
		keyMap:   NewDefaultKeyMap(),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures an Input.
type Option func(*config)

// WithPlaceholder sets the hint shown while the input is empty. It takes
// precedence over the hint derived from WithDefault.
func WithPlaceholder(placeholder string) Option {
	return func(c *config) {
		c.placeholder = placeholder
		c.placeholderSet = true
	}
}

// WithDefault sets the value used when the user submits an empty input.
// Unless WithPlaceholder is given, the default is also shown as the hint,
// followed by " (default)". A multiline input with a default starts in the
// preview, so Enter submits the default right away.
func WithDefault(value string) Option {
	return func(c *config) {
		c.defaultValue = &value
	}
}

// WithRequired sets whether an empty submission is rejected. Default: true.
// A default value always satisfies the requirement.
func WithRequired(required bool) Option {
	return func(c *config) {
		c.required = required
	}
}

// WithMultiline enables multiline editing.
//
//  1. Enter inserts a new line.
//  2. Esc switches to the preview, where Enter submits.
//  3. Typing in the preview returns to editing.
func WithMultiline() Option {
	return func(c *config) {
		c.multiline = true
	}
}

// WithValidator validates the input when the user submits.
// It is the same as WithValidateOnEnter.
func WithValidator(v Validator) Option {
	return WithValidateOnEnter(v)
}

// WithValidateOnEnter validates the input when the user submits.
func WithValidateOnEnter(v Validator) Option {
	return func(c *config) {
		c.validateOnEnter = v
	}
}

// WithInteractiveValidator validates the input on every key. The text must
// also parse into the value type, so errors show before Enter is pressed.
func WithInteractiveValidator(v Validator) Option {
	return func(c *config) {
		c.validateInteractive = v
	}
}

// WithSuggestions enables autocompletion from a fixed candidate list.
//
// Tab, Down and Up cycle through the candidates that contain the typed text,
// ignoring case.
func WithSuggestions(candidates ...string) Option {
	return WithSuggester(NewStaticSource(candidates...))
}

// WithSuggestFunc enables autocompletion from a callback, which is called
// with the current query whenever suggestions are needed.
func WithSuggestFunc(fn func(query string) ([]string, error)) Option {
	return WithSuggester(SuggestFunc(fn))
}

// WithSuggester enables autocompletion from any Suggester.
func WithSuggester(s Suggester) Option {
	return func(c *config) {
		c.suggester = s
	}
}

// WithAutocompleteOnEnter fills in the first matching suggestion when the
// user presses Enter without highlighting one.
func WithAutocompleteOnEnter() Option {
	return func(c *config) {
		c.autocompleteOnEnter = true
	}
}

// WithTheme sets the formatter used by Render. Default: ThemeDefault.
func WithTheme(theme Theme) Option {
	return func(c *config) {
		if theme != nil {
			c.theme = theme
		}
	}
}

// WithKeyMap sets the key bindings used by Run.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *config) {
		if keyMap != nil {
			c.keyMap = keyMap
		}
	}
}

// WithLogger sets the logger for diagnostics such as failing suggestion
// sources. Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHistory records every submitted value in hm. The history is saved when
// the input is closed.
//
// Example:
//
//	hm := autoprompt.NewHistoryManager(&autoprompt.HistoryConfig{
//		Enabled: true,
//		File:    "~/.myapp_history",
//	})
//	_ = hm.LoadHistory()
//	in := autoprompt.NewTextInput("Command",
//		autoprompt.WithHistory(hm),
//		autoprompt.WithSuggester(hm.Suggester()),
//	)
func WithHistory(hm *HistoryManager) Option {
	return func(c *config) {
		c.history = hm
	}
}
