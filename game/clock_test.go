package game

import (
	"testing"
	"time"

	"github.com/ardacagankeser/checkers/board"
)

func TestClockUntimed(t *testing.T) {
	t.Parallel()
	cl := NewClock(0)
	if cl.Timed() {
		t.Error("expected an untimed clock")
	}
	cl.Reduce(board.SideWhite, time.Minute)
	if got := cl.Remaining(board.SideWhite); got != 0 {
		t.Errorf("unexpected remaining time: got=%v want=0", got)
	}
	if cl.Expired(board.SideWhite) {
		t.Error("untimed clock must never expire")
	}
	if got, want := cl.Format(board.SideWhite), "∞"; got != want {
		t.Errorf("unexpected format: got=%s want=%s", got, want)
	}
}

func TestClockReduce(t *testing.T) {
	t.Parallel()
	cl := NewClock(5 * time.Minute)
	if !cl.Timed() {
		t.Fatal("expected a timed clock")
	}
	cl.Reduce(board.SideWhite, 30*time.Second)
	if got, want := cl.Remaining(board.SideWhite), 4*time.Minute+30*time.Second; got != want {
		t.Errorf("unexpected remaining time: got=%v want=%v", got, want)
	}
	if got, want := cl.Remaining(board.SideBlack), 5*time.Minute; got != want {
		t.Errorf("unexpected remaining time: got=%v want=%v", got, want)
	}
	if got, want := cl.Format(board.SideWhite), "04:30"; got != want {
		t.Errorf("unexpected format: got=%s want=%s", got, want)
	}
	if got, want := cl.Format(board.SideBlack), "05:00"; got != want {
		t.Errorf("unexpected format: got=%s want=%s", got, want)
	}
	if cl.Expired(board.SideWhite) || cl.Expired(board.SideBlack) {
		t.Error("unexpected expiry")
	}
}

func TestClockFloorsAtZero(t *testing.T) {
	t.Parallel()
	cl := NewClock(10 * time.Second)
	cl.Reduce(board.SideWhite, 15*time.Second)
	if got := cl.Remaining(board.SideWhite); got != 0 {
		t.Errorf("unexpected remaining time: got=%v want=0", got)
	}
	if !cl.Expired(board.SideWhite) {
		t.Error("expected white to be expired")
	}
	if cl.Expired(board.SideBlack) {
		t.Error("unexpected black expiry")
	}
	if got, want := cl.Format(board.SideWhite), "00:00"; got != want {
		t.Errorf("unexpected format: got=%s want=%s", got, want)
	}
}

func TestClockUnknownSide(t *testing.T) {
	t.Parallel()
	cl := NewClock(time.Minute)
	cl.Reduce(board.SideUnknown, time.Minute)
	if cl.Expired(board.SideUnknown) {
		t.Error("unexpected expiry for unknown side")
	}
	if got, want := cl.Remaining(board.SideWhite), time.Minute; got != want {
		t.Errorf("unexpected remaining time: got=%v want=%v", got, want)
	}
}
