package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/ardacagankeser/checkers/board"
)

// Clock tracks the remaining thinking time of both sides. A zero limit makes
// the clock untimed, in which case Reduce and Expired are no-ops. The clock
// does not tick on its own, the caller reduces it as wall time passes.
type Clock struct {
	limit     time.Duration
	remaining [2 + 1]time.Duration
}

func NewClock(limit time.Duration) *Clock {
	cl := &Clock{
		limit: limit,
	}
	cl.remaining[board.SideWhite] = limit
	cl.remaining[board.SideBlack] = limit
	return cl
}

func (cl *Clock) Timed() bool {
	return cl.limit > 0
}

func (cl *Clock) Remaining(s board.Side) time.Duration {
	return cl.remaining[s]
}

// Reduce subtracts elapsed wall time from the given side's budget, flooring
// at zero.
func (cl *Clock) Reduce(s board.Side, elapsed time.Duration) {
	if !cl.Timed() || s == board.SideUnknown {
		return
	}
	cl.remaining[s] = max(0, cl.remaining[s]-elapsed)
}

func (cl *Clock) Expired(s board.Side) bool {
	if !cl.Timed() || s == board.SideUnknown {
		return false
	}
	return cl.remaining[s] <= 0
}

// Format renders a side's remaining time as MM:SS, or the infinity sign for
// untimed clocks.
func (cl *Clock) Format(s board.Side) string {
	if !cl.Timed() {
		return "∞"
	}
	total := int(cl.remaining[s].Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}
