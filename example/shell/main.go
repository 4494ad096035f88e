// Package main provides a shell-like file explorer built on autoprompt.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/autoprompt"
)

var commands = []string{"ls", "cd", "cat", "pwd", "exit"}

func main() {
	fmt.Println("Shell-like File Explorer Example")
	fmt.Println("================================")
	fmt.Println("Commands:")
	fmt.Println("  ls [path]    - List directory contents")
	fmt.Println("  cd [path]    - Change directory")
	fmt.Println("  cat [file]   - Show file contents")
	fmt.Println("  pwd          - Show current directory")
	fmt.Println("  exit         - Exit")
	fmt.Println()
	fmt.Println("Use Tab to complete commands and paths.")
	fmt.Println()

	in := autoprompt.NewTextInput("shell",
		autoprompt.WithSuggester(shellSuggester()),
		autoprompt.WithPlaceholder("ls"),
	)
	defer in.Close()

	for {
		result, err := in.Run()
		in.Reset()
		if err != nil {
			if errors.Is(err, autoprompt.ErrInterrupted) || errors.Is(err, autoprompt.ErrEOF) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		result = strings.TrimSpace(result)
		if result == "exit" {
			fmt.Println("Goodbye!")
			return
		}
		executeCommand(result)
		fmt.Println()
	}
}

// shellSuggester completes command names for the first word and file paths
// for the argument of ls, cd and cat.
func shellSuggester() autoprompt.Suggester {
	files := autoprompt.NewFileSuggester()

	return autoprompt.SuggestFunc(func(query string) ([]string, error) {
		cmd, arg, hasArg := strings.Cut(query, " ")
		if !hasArg {
			var matches []string
			for _, c := range commands {
				if strings.HasPrefix(c, cmd) && c != cmd {
					matches = append(matches, c)
				}
			}
			return matches, nil
		}

		switch cmd {
		case "ls", "cd", "cat":
		default:
			return nil, nil
		}
		if arg == "" {
			arg = "./"
		}
		paths, err := files.Suggestions(arg)
		if err != nil {
			return nil, err
		}
		suggestions := make([]string, 0, len(paths))
		for _, p := range paths {
			suggestions = append(suggestions, cmd+" "+p)
		}
		return suggestions, nil
	})
}

func executeCommand(input string) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return
	}

	cmd, args := words[0], words[1:]
	switch cmd {
	case "pwd":
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(cwd)

	case "ls":
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Contents of %s:\n", path)
		for _, entry := range entries {
			if entry.IsDir() {
				fmt.Printf("  %s/\n", entry.Name())
			} else {
				fmt.Printf("  %s\n", entry.Name())
			}
		}

	case "cd":
		if len(args) == 0 {
			fmt.Println("Error: cd requires a directory argument")
			return
		}
		if err := os.Chdir(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if cwd, err := os.Getwd(); err == nil {
			fmt.Printf("Changed to %s\n", filepath.Base(cwd))
		}

	case "cat":
		if len(args) == 0 {
			fmt.Println("Error: cat requires a file argument")
			return
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Print(string(content))

	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}
}
