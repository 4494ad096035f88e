// Package main demonstrates running a prompt inside a Bubble Tea program.
package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/autoprompt"
	"github.com/nao1215/autoprompt/bubble"
)

func main() {
	in := autoprompt.NewTextInput("Favorite editor",
		autoprompt.WithSuggestions("vim", "neovim", "emacs", "helix", "vscode", "nano"),
		autoprompt.WithTheme(bubble.DefaultStyles()),
	)
	m := bubble.New(in)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}

	editor, err := m.Value()
	if err != nil {
		if errors.Is(err, autoprompt.ErrInterrupted) || errors.Is(err, autoprompt.ErrEOF) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("You use %s\n", editor)
}
