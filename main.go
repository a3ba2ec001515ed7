package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/slate/editor"
	"github.com/lixenwraith/slate/terminal"
)

const version = "0.1.0"

func main() {
	mute := flag.Bool("mute", false, "disable audible feedback on rejected edits")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("slate %s\n", version)
		return
	}

	var bell *editor.Bell
	if !*mute {
		var err error
		bell, err = editor.NewBell()
		if err != nil {
			// Non-fatal, the session runs without sound
			log.Printf("audio unavailable: %v", err)
			bell = nil
		}
	}

	if err := run(bell); err != nil {
		fmt.Fprintf(os.Stderr, "slate: %v\n", err)
		os.Exit(1)
	}
}

func run(bell *editor.Bell) error {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			// Restore the terminal before the stack trace, or the trace is
			// unreadable in raw mode on the alt screen
			term.Fini()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "panic: %v\n\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	defer bell.Close()
	defer term.Fini()

	return editor.Run(term, feedbackOrNil(bell))
}

// feedbackOrNil avoids handing the editor a typed nil that would defeat
// its feedback == nil check.
func feedbackOrNil(b *editor.Bell) editor.Feedback {
	if b == nil {
		return nil
	}
	return b
}
