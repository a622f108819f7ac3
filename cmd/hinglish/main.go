// Command hinglish converts text between Roman Hindi (Hinglish) and
// Devanagari.
//
//	hinglish "Namaste Dosto"
//	hinglish "नमस्ते दोस्तो"
//	hinglish --to-hindi "Kya haal hai"
//	hinglish --to-roman "क्या हाल है"
//	hinglish --interactive
//	hinglish --file input.txt --output output.txt
//	echo "Namaste" | hinglish
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := newRootCmd(&environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
