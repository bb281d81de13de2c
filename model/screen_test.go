package model

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func TestScreenRendererDraw(t *testing.T) {
	screen := newSimScreen(t, 10, 4)
	b := mustBoard(t, 3, 2, [2]int{1, 0}, [2]int{2, 1})

	if err := NewScreenRenderer(screen).Draw(NewSnapshot(b)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		col, row int
		want     rune
	}{
		{0, 0, ' '},
		{2, 0, '█'},
		{3, 0, '█'},
		{4, 0, ' '},
		{4, 1, '█'},
		{5, 1, '█'},
		{0, 1, ' '},
	}
	for _, tt := range tests {
		if got, _, _, _ := screen.GetContent(tt.col, tt.row); got != tt.want {
			t.Errorf("content at (%d,%d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestScreenRendererWatchQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
		{"q", tcell.KeyRune, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newSimScreen(t, 10, 4)
			r := NewScreenRenderer(screen)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			quit := make(chan struct{})
			done := make(chan struct{})
			go func() {
				defer close(done)
				r.WatchQuit(ctx, func() { close(quit) })
			}()

			screen.InjectKey(tt.key, tt.ch, tcell.ModNone)

			select {
			case <-quit:
			case <-ctx.Done():
				t.Fatal("quit key was not observed")
			}
			<-done
		})
	}
}

func TestScreenRendererWatchQuitIgnoresOtherKeys(t *testing.T) {
	screen := newSimScreen(t, 10, 4)
	r := NewScreenRenderer(screen)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	quitCalled := false
	r.WatchQuit(ctx, func() { quitCalled = true })

	if quitCalled {
		t.Fatal("non-quit key triggered quit")
	}
}
