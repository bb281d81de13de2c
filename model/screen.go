package model

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// ScreenRenderer draws snapshots on a tcell screen and turns key presses into quit signals
type ScreenRenderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
}

// NewScreenRenderer wraps an initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 100)).Background(tcell.ColorBlack),
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Draw renders every cell as two screen columns, clipped to the screen size
func (r *ScreenRenderer) Draw(s *Snapshot) error {
	r.screen.Clear()
	for y := range s.Height() {
		for x := range s.Width() {
			mainc, style := ' ', r.dead
			if s.Alive(x, y) {
				mainc, style = '█', r.alive
			}
			r.screen.SetContent(x*2, y, mainc, nil, style)
			r.screen.SetContent(x*2+1, y, mainc, nil, style)
		}
	}
	r.screen.Show()
	return nil
}

// WatchQuit blocks until ctx is done or the user asks to quit, in which case quit is called.
// Esc, Ctrl+C and 'q' quit; resizes repaint the screen.
func (r *ScreenRenderer) WatchQuit(ctx context.Context, quit func()) {
	events := make(chan tcell.Event)
	stop := make(chan struct{})
	defer close(stop)
	go r.screen.ChannelEvents(events, stop)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					quit()
					return
				}
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
