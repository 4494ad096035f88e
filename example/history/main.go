// Package main demonstrates history persistence and history-based suggestions.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/autoprompt"
)

func main() {
	fmt.Println("History Example with File Persistence")
	fmt.Println("Earlier commands are suggested as you type; press Tab to cycle")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Printf("History is saved to %s\n", autoprompt.GetDefaultHistoryFile())
	fmt.Println()

	// The file may be given as an absolute path, "~/.my_app_history" or a
	// relative path, which is converted to an absolute one.
	hm := autoprompt.NewHistoryManager(&autoprompt.HistoryConfig{
		Enabled:    true,
		MaxEntries: 1000,
		File:       autoprompt.GetDefaultHistoryFile(),
	})
	if err := hm.LoadHistory(); err != nil {
		log.Fatal(err)
	}

	in := autoprompt.NewTextInput("history",
		autoprompt.WithHistory(hm),
		autoprompt.WithSuggester(hm.Suggester()),
	)
	defer in.Close()

	for {
		result, err := in.Run()
		in.Reset()
		if err != nil {
			if errors.Is(err, autoprompt.ErrEOF) || errors.Is(err, autoprompt.ErrInterrupted) {
				fmt.Println("Goodbye!")
				return
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		switch strings.TrimSpace(result) {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "history":
			fmt.Println("Command History:")
			for i, cmd := range hm.GetHistory() {
				fmt.Printf("  %3d: %s\n", i+1, cmd)
			}
		case "clear":
			hm.ClearHistory()
			fmt.Println("History cleared")
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
