package autoprompt

import (
	"log/slog"
)

// Messages reported in StateError.
const (
	MsgInputRequired = "Input required"
	MsgInvalidFormat = "Invalid value format"
)

// multilineMode is the multiline sub-mode of an Input.
type multilineMode int

const (
	multilineDisabled multilineMode = iota
	multilinePreview
	multilineEditing
)

// Input is a text prompt producing a value of type T.
//
// Input is a state machine: Handle consumes one key and returns the new
// lifecycle State, Render draws the prompt for a State. Run and
// RunWithContext drive both from a terminal. An Input is not safe for
// concurrent use.
type Input[T any] struct {
	label       string
	input       *Cursor
	placeholder *Cursor
	parse       ParseFunc[T]
	mode        multilineMode
	cycle       cycler
	cfg         config
	logger      *slog.Logger

	terminal terminalInterface
	screen   *screen
}

// NewInput creates a prompt whose submitted text is converted with parse.
//
// Example:
//
//	age := autoprompt.NewInput("How old are you?", autoprompt.ParseInt,
//		autoprompt.WithPlaceholder("42"),
//	)
//	defer age.Close()
//	v, err := age.Run()
func NewInput[T any](label string, parse ParseFunc[T], options ...Option) *Input[T] {
	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}

	in := &Input[T]{
		label:       label,
		input:       NewCursor(),
		placeholder: NewCursor(),
		parse:       parse,
		cycle:       newCycler(),
		cfg:         cfg,
		logger:      cfg.logger,
	}
	if cfg.placeholderSet {
		in.placeholder.Extend(cfg.placeholder)
	}
	if in.placeholder.IsEmpty() && cfg.defaultValue != nil {
		in.placeholder.Extend(*cfg.defaultValue)
		in.placeholder.Extend(" (default)")
	}
	in.placeholder.SetPosition(0)
	in.mode = in.initialMode()
	return in
}

// initialMode is the multiline mode of a fresh prompt. A multiline prompt
// with a default starts in the preview, where Enter submits the default.
func (in *Input[T]) initialMode() multilineMode {
	switch {
	case !in.cfg.multiline:
		return multilineDisabled
	case in.cfg.defaultValue != nil:
		return multilinePreview
	default:
		return multilineEditing
	}
}

// Reset clears the text and the suggestion state so the prompt can be run
// again.
func (in *Input[T]) Reset() {
	in.input.Clear()
	in.cycle.reset()
	in.mode = in.initialMode()
}

// NewTextInput creates a prompt that submits the text as typed.
//
// Example:
//
//	in := autoprompt.NewTextInput("Pick a language",
//		autoprompt.WithSuggestions("rust", "go", "python"),
//	)
func NewTextInput(label string, options ...Option) *Input[string] {
	return NewInput(label, ParseString, options...)
}

// Value returns the current buffer contents.
func (in *Input[T]) Value() string {
	return in.input.String()
}

// Highlighted returns the index of the highlighted suggestion, or -1.
func (in *Input[T]) Highlighted() int {
	return in.cycle.highlighted()
}

// Previewing reports whether a multiline input is showing its preview.
func (in *Input[T]) Previewing() bool {
	return in.mode == multilinePreview
}

// Handle applies one key to the prompt and returns the resulting state.
//
// Outside the multiline preview, keys first go to the line editor: printable
// characters are inserted, Backspace and Delete remove text, and the arrow,
// Home and End keys move the insertion point. Up and Down move between lines;
// when suggestions are available the cycling rule then replaces the text. The prompt rules then apply in
// a fixed order, and earlier rules may return before later ones run:
//
//  1. Tab, Down and Up cycle through suggestions when a Suggester is set.
//  2. Esc while editing multiline text switches to the preview and returns
//     the preview-switch StateCancel (State.Cancelled reports false). Esc
//     anywhere else, and Ctrl+C, cancel the prompt.
//  3. Enter inserts a new line while editing multiline text and requests
//     submission otherwise.
//  4. In the preview, printable characters and Backspace edit the text.
//  5. Any other printable character or Backspace ends suggestion cycling.
//  6. On submission with autocomplete-on-enter and no highlight, the first
//     suggestion replaces the text.
//  7. The preview returns to editing.
//  8. An empty submission takes the default, or fails with "Input required"
//     when the input is required.
//  9. The interactive validator and the parser run on every key.
//  10. On submission the enter validator and the parser run, producing
//     StateSubmit or StateError. A submitted text is added to the history
//     configured with WithHistory.
func (in *Input[T]) Handle(key Key) State[T] {
	if in.mode != multilinePreview {
		in.editLine(key)
	}

	if key.Code == KeyInterrupt {
		return Cancel[T]()
	}

	if in.cfg.suggester != nil {
		switch key.Code {
		case KeyTab:
			return in.cycleSuggestions(dirTab)
		case KeyDown:
			return in.cycleSuggestions(dirDown)
		case KeyUp:
			return in.cycleSuggestions(dirUp)
		}
	}

	submit := false
	switch {
	case key.Code == KeyEscape && in.mode == multilineEditing:
		in.mode = multilinePreview
		return previewCancel[T]()
	case key.Code == KeyEscape:
		return Cancel[T]()
	case key.Code == KeyEnter:
		if in.mode == multilineEditing {
			in.input.Insert('\n')
		} else {
			submit = true
		}
	case key.isPrintable() && in.mode == multilinePreview:
		in.input.Insert(key.Rune)
	case key.Code == KeyBackspace && in.mode == multilinePreview:
		in.input.DeleteLeft()
	case key.isPrintable(), key.Code == KeyBackspace:
		in.cycle.reset()
	}

	if submit && in.cfg.autocompleteOnEnter && in.cycle.highlighted() == noSelection {
		query := in.input.String()
		if suggestions := in.suggestions(query); len(suggestions) > 0 {
			if completion := in.cfg.suggester.Completion(query, &suggestions[0]); completion != nil {
				in.input.Set(*completion)
			}
		}
	}

	if in.mode == multilinePreview {
		in.mode = multilineEditing
	}

	if submit && in.input.IsEmpty() {
		if in.cfg.defaultValue != nil {
			in.input.Extend(*in.cfg.defaultValue)
		} else if in.cfg.required {
			return Error[T](MsgInputRequired)
		}
	}

	text := in.input.String()

	if in.cfg.validateInteractive != nil {
		if err := in.cfg.validateInteractive(text); err != nil {
			return Error[T](err.Error())
		}
		if _, err := in.parse(text); err != nil {
			return Error[T](MsgInvalidFormat)
		}
	}

	if submit {
		if in.cfg.validateOnEnter != nil {
			if err := in.cfg.validateOnEnter(text); err != nil {
				return Error[T](err.Error())
			}
		}
		value, err := in.parse(text)
		if err != nil {
			return Error[T](MsgInvalidFormat)
		}
		if in.cfg.history != nil {
			in.cfg.history.AddEntry(text)
		}
		return Submit(value)
	}

	return Active[T]()
}

// editLine routes a key to the line editor.
func (in *Input[T]) editLine(key Key) {
	switch key.Code {
	case KeyRune:
		if key.isPrintable() {
			in.input.Insert(key.Rune)
		}
	case KeyBackspace:
		in.input.DeleteLeft()
	case KeyDelete:
		in.input.DeleteRight()
	case KeyLeft:
		in.input.MoveLeft()
	case KeyRight:
		in.input.MoveRight()
	case KeyHome:
		in.input.MoveHome()
	case KeyEnd:
		in.input.MoveEnd()
	case KeyUp:
		in.input.MoveUp()
	case KeyDown:
		in.input.MoveDown()
	}
}

// cycleSuggestions moves the highlight and copies the highlighted candidate
// into the buffer.
func (in *Input[T]) cycleSuggestions(dir direction) State[T] {
	live := in.input.String()
	query := in.cycle.filterQuery(live)
	suggestions := in.suggestions(query)
	if len(suggestions) == 0 {
		return Active[T]()
	}

	if !in.cycle.pinned {
		in.cycle.query = live
		in.cycle.pinned = true
	}

	in.cycle.step(dir, len(suggestions))
	if idx := in.cycle.highlighted(); idx != noSelection {
		if completion := in.cfg.suggester.Completion(in.cycle.query, &suggestions[idx]); completion != nil {
			in.input.Clear()
			in.input.Extend(*completion)
		}
	}
	return Active[T]()
}

// suggestions returns the candidates for query. Source failures are logged
// and yield no candidates so a broken source never blocks typing.
func (in *Input[T]) suggestions(query string) []string {
	if in.cfg.suggester == nil {
		return nil
	}
	suggestions, err := in.cfg.suggester.Suggestions(query)
	if err != nil {
		in.logger.Debug("suggestion source failed", "query", query, "error", err)
		return nil
	}
	return suggestions
}
