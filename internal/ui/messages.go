package ui

import "time"

// periodic scheduler tick
type tickMsg time.Time

// store watcher ready
type watchStartedMsg struct{ ch <-chan struct{} }

// a file changed outside the program
type fileChangedMsg struct{}
