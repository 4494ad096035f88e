// Package autoprompt provides a single-field interactive text input with
// inline suggestions for terminal programs.
//
// An Input reads one value from the user. As the user types, a suggestion
// source produces matching candidates which are listed below the field;
// Tab, Up and Down cycle through them and copy the highlighted candidate into
// the field. On submission the text is validated and parsed into a typed
// value.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/autoprompt"
//	)
//
//	func main() {
//		in := autoprompt.NewTextInput("Language",
//			autoprompt.WithSuggestions("go", "rust", "ruby", "zig"),
//		)
//		defer in.Close()
//
//		lang, err := in.Run()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("You picked %s\n", lang)
//	}
//
// Typed Values:
//
// NewInput takes a ParseFunc that turns the submitted text into a value.
// A parse error is shown below the field and the prompt keeps running:
//
//	port := autoprompt.NewInput("Port", autoprompt.ParseInt,
//		autoprompt.WithDefault("8080"),
//	)
//
// Suggestions:
//
// Candidates come from a Suggester. NewStaticSource filters a fixed list,
// SuggestFunc wraps a callback, NewFileSuggester lists file system paths and
// HistoryManager.Suggester ranks earlier submissions by fuzzy score. A source
// returning an error is logged and treated as having no suggestions.
//
// Key Bindings:
//
//   - Enter: Submit (insert a new line in multiline mode)
//   - Esc: Cancel (switch to the preview in multiline mode)
//   - Ctrl+C: Cancel and return ErrInterrupted
//   - Ctrl+D: Return ErrEOF when the input is empty
//   - Tab: Highlight the next suggestion, wrapping back to none
//   - Up / Down: Highlight the previous or next suggestion
//   - Left / Right, Home / End, Ctrl+A / Ctrl+E: Move the cursor
//   - Backspace / Delete: Delete a character
//
// Keys are decoded through a KeyMap, which can be customized:
//
//	keyMap := autoprompt.NewDefaultKeyMap()
//	keyMap.Bind('\x0e', autoprompt.KeyDown) // Ctrl+N
//	in := autoprompt.NewTextInput("Name", autoprompt.WithKeyMap(keyMap))
//
// Multiline Input:
//
// With WithMultiline, Enter inserts a line break. Esc switches to a preview
// where Enter submits and any other key resumes editing.
//
// Themes:
//
// Rendering goes through the Theme interface. ThemeDefault, ThemeDark,
// ThemeAccessible, ThemeDracula, ThemeMonokai and ThemePlain are built in,
// and package bubble provides a lipgloss theme along with a Bubble Tea model.
//
// Context Support:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	value, err := in.RunWithContext(ctx)
//	if errors.Is(err, context.DeadlineExceeded) {
//		fmt.Println("Timeout reached")
//		return
//	}
//
// Error Handling:
//
//   - ErrInterrupted: The user cancelled with Esc or Ctrl+C
//   - ErrEOF: The user pressed Ctrl+D on an empty input
//   - context.DeadlineExceeded, context.Canceled: The context ended
//
// Thread Safety:
//
// Inputs are not safe for concurrent use. Drive each Input from a single
// goroutine.
//
// Resource Management:
//
// Always call Close when done with an Input. It saves the history configured
// with WithHistory and releases the terminal, and it is safe to call more
// than once.
package autoprompt
