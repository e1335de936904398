//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// visibility is the part of the scheduler a suspended terminal toggles.
type visibility interface {
	SetVisible(visible bool)
}

// pauseWhileSuspended pauses polling when the process is suspended with
// Ctrl-Z and resumes it, with an immediate refresh, on SIGCONT. The returned
// function restores default signal handling.
func pauseWhileSuspended(v visibility) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTSTP, syscall.SIGCONT)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case sig := <-sigs:
				handleSuspendSignal(v, sig)
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func handleSuspendSignal(v visibility, sig os.Signal) {
	switch sig {
	case syscall.SIGTSTP:
		v.SetVisible(false)
		// Handling SIGTSTP cancels the default stop, so stop for real.
		_ = syscall.Kill(os.Getpid(), syscall.SIGSTOP)
	case syscall.SIGCONT:
		v.SetVisible(true)
	}
}
