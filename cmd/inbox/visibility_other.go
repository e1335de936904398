//go:build !unix

package main

type visibility interface {
	SetVisible(visible bool)
}

func pauseWhileSuspended(visibility) func() { return func() {} }
