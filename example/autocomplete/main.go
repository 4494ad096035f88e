// Package main demonstrates suggestion cycling with a static candidate list.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/autoprompt"
)

func main() {
	fmt.Println("Autocomplete Example")
	fmt.Println("====================")
	fmt.Println("Type a prefix, then press Tab or ↑/↓ to cycle through matches.")
	fmt.Println("Press Esc or Ctrl+C to quit.")
	fmt.Println()

	in := autoprompt.NewTextInput("Language",
		autoprompt.WithSuggestions("go", "rust", "ruby", "python", "typescript", "zig", "haskell"),
		autoprompt.WithPlaceholder("start typing..."),
		autoprompt.WithAutocompleteOnEnter(),
	)
	defer in.Close()

	lang, err := in.Run()
	if err != nil {
		if errors.Is(err, autoprompt.ErrInterrupted) || errors.Is(err, autoprompt.ErrEOF) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("You picked %s\n", lang)
}
