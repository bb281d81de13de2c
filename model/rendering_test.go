package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestTerminalRendererDraw(t *testing.T) {
	b := mustBoard(t, 3, 2, [2]int{0, 0}, [2]int{2, 1})
	var out bytes.Buffer

	if err := NewTerminalRenderer(&out).Draw(NewSnapshot(b)); err != nil {
		t.Fatal(err)
	}

	want := clearScreenSeq +
		gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosBlock + "\n"
	if got := out.String(); got != want {
		t.Fatalf("frame mismatch:\n%q\nwant\n%q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestTerminalRendererWriteError(t *testing.T) {
	b := mustBoard(t, 2, 2)
	err := NewTerminalRenderer(failingWriter{}).Draw(NewSnapshot(b))
	if err == nil || !strings.Contains(err.Error(), "closed") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}
