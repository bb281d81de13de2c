package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreenSeq = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering on any writer
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing frames to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Draw clears the terminal and renders the snapshot in one write
func (r *TerminalRenderer) Draw(s *Snapshot) error {
	var sb strings.Builder
	sb.Grow(len(clearScreenSeq) + s.Height()*(s.Width()*len(gridPosBlock)+1))
	sb.WriteString(clearScreenSeq)
	r.render(&sb, s)
	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Draw] failed to write frame")
	}
	return nil
}

func (r *TerminalRenderer) render(sb *strings.Builder, s *Snapshot) {
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Alive(x, y) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
}
