// Package main demonstrates typed inputs, defaults and validators.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/autoprompt"
)

func noSpaces(text string) error {
	if strings.ContainsAny(text, " \t") {
		return errors.New("Must not contain spaces")
	}
	return nil
}

func main() {
	fmt.Println("Validation Example")
	fmt.Println("==================")
	fmt.Println()

	if err := run(); err != nil {
		if errors.Is(err, autoprompt.ErrInterrupted) || errors.Is(err, autoprompt.ErrEOF) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}
}

func run() error {
	user := autoprompt.NewTextInput("Username",
		autoprompt.WithInteractiveValidator(noSpaces),
		autoprompt.WithValidator(autoprompt.Validators(
			autoprompt.MinLength(3),
			autoprompt.MaxLength(16),
		)),
	)
	name, err := user.Run()
	if cerr := user.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	port := autoprompt.NewInput("Port", autoprompt.ParseInt,
		autoprompt.WithDefault("8080"),
	)
	defer port.Close()

	p, err := port.Run()
	if err != nil {
		return err
	}

	fmt.Printf("%s will listen on :%d\n", name, p)
	return nil
}
