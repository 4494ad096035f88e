// Package main demonstrates multiline input with a preview before submitting.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/autoprompt"
)

func main() {
	fmt.Println("Multiline Input Example")
	fmt.Println("=======================")
	fmt.Println("Enter inserts a new line. Press Esc to preview, then Enter to submit.")
	fmt.Println("Press Esc again in the preview to cancel.")
	fmt.Println()

	in := autoprompt.NewTextInput("Commit message",
		autoprompt.WithMultiline(),
		autoprompt.WithValidator(autoprompt.MaxLength(500)),
	)
	defer in.Close()

	msg, err := in.Run()
	if err != nil {
		if errors.Is(err, autoprompt.ErrInterrupted) || errors.Is(err, autoprompt.ErrEOF) {
			fmt.Println("Aborted.")
			return
		}
		log.Fatal(err)
	}

	lines := strings.Split(msg, "\n")
	fmt.Printf("Summary: %s\n", lines[0])
	fmt.Printf("Lines:   %d\n", len(lines))
}
