package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// fileExists returns nil if path exists, or a descriptive error if it
// doesn't or can't be stat'ed.
func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file %q", path)
		}
		return err
	}
	return nil
}

// confirmIfExists asks for confirmation before overwriting an existing
// file, and is a no-op (proceed) when the file doesn't exist yet.
func confirmIfExists(path, prompt string) bool {
	if err := fileExists(path); err != nil {
		return true
	}
	return askForConfirmation(prompt)
}

// askForConfirmation shows msg and waits for the user to type y or n;
// ENTER defaults to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	for {
		input, err := reader.ReadString('\n')
		if err != nil || len(input) == 0 {
			return false
		}
		switch input[0] {
		case 'Y', 'y':
			return true
		case 'N', 'n', '\n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
