package main

import (
	"testing"

	"github.com/charmbracelet/ssh"
)

func TestWindowSizeFollowsChanges(t *testing.T) {
	ws := newWindowSize(ssh.Window{Width: 80, Height: 24})
	if cols, rows, err := ws.size(); cols != 80 || rows != 24 || err != nil {
		t.Fatalf("size() = %d,%d,%v, want 80,24,nil", cols, rows, err)
	}

	changes := make(chan ssh.Window, 3)
	changes <- ssh.Window{Width: 100, Height: 30}
	changes <- ssh.Window{Width: 132, Height: 43}
	close(changes)

	done := make(chan struct{})
	go func() {
		ws.follow(changes)
		close(done)
	}()
	<-done

	if cols, rows, _ := ws.size(); cols != 132 || rows != 43 {
		t.Errorf("size() = %d,%d, want the last change 132,43", cols, rows)
	}
}
