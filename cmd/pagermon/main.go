package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	daemonAddr := flag.String("addr", "http://localhost:8080", "base URL of a running pagerd")
	interval := flag.Duration("interval", time.Second, "poll interval")
	flag.Parse()

	m := initialModel(*daemonAddr+"/pager/debug", *interval)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "pagermon:", err)
		os.Exit(1)
	}
}
