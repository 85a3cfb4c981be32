package animation

import (
	"sync"
	"testing"
	"time"
)

func useManualClock(t *testing.T) *ManualClock {
	t.Helper()
	clk := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestAnimationControllerRepeatLoopsForever(t *testing.T) {
	clk := useManualClock(t)
	c := NewAnimationController(200 * time.Millisecond)
	defer c.Dispose()

	c.Repeat()
	if !c.IsRepeating() {
		t.Fatal("expected repeating animation")
	}

	clk.Advance(50 * time.Millisecond)
	StepTickers()
	if c.Value < 0.24 || c.Value > 0.26 {
		t.Errorf("value = %v, want 0.25", c.Value)
	}

	// Several loops later the value wraps instead of completing.
	clk.Advance(5*200*time.Millisecond + 50*time.Millisecond)
	StepTickers()
	if c.Value < 0.49 || c.Value > 0.51 {
		t.Errorf("value after loops = %v, want 0.5", c.Value)
	}
	if !c.IsRepeating() {
		t.Error("repeating animation must keep running")
	}
}

func TestAnimationControllerCurveShapesLoop(t *testing.T) {
	clk := useManualClock(t)
	c := NewAnimationController(100 * time.Millisecond)
	c.Curve = func(p float64) float64 { return p * p }
	c.LowerBound, c.UpperBound = 10, 20
	defer c.Dispose()

	c.Repeat()
	clk.Advance(50 * time.Millisecond)
	StepTickers()
	if c.Value < 12.49 || c.Value > 12.51 {
		t.Errorf("value = %v, want 12.5", c.Value)
	}
}

func TestAnimationControllerStopEndsRepeat(t *testing.T) {
	clk := useManualClock(t)
	c := NewAnimationController(time.Second)
	c.Repeat()
	clk.Advance(250 * time.Millisecond)
	StepTickers()
	c.Stop()
	if c.IsRepeating() {
		t.Error("Stop should end repeat")
	}

	held := c.Value
	clk.Advance(250 * time.Millisecond)
	StepTickers()
	if c.Value != held {
		t.Errorf("stopped value moved from %v to %v", held, c.Value)
	}
	c.Dispose()
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Unix(0, 0)
	clk := NewManualClock(start)
	if !clk.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", clk.Now(), start)
	}
	clk.Advance(1500 * time.Millisecond)
	if got := clk.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("elapsed = %v, want 1.5s", got)
	}
}

func TestSetClockReturnsPrevious(t *testing.T) {
	a := NewManualClock(time.Unix(10, 0))
	b := NewManualClock(time.Unix(20, 0))
	orig := SetClock(a)
	defer SetClock(orig)

	if prev := SetClock(b); prev != a {
		t.Errorf("SetClock returned %v, want the first manual clock", prev)
	}
	if got := Now(); !got.Equal(time.Unix(20, 0)) {
		t.Errorf("Now() = %v, want the installed clock's time", got)
	}
	if _, ok := SetClock(nil).(systemClock); ok {
		t.Error("SetClock(nil) should return the manual clock it replaced")
	}
	if _, ok := SetClock(b).(systemClock); !ok {
		t.Error("SetClock(nil) should install the system clock")
	}
}

func TestStoppedTickerIsNotStepped(t *testing.T) {
	clk := useManualClock(t)
	calls := 0
	tk := NewTicker(func(time.Duration) { calls++ })
	tk.Start()
	clk.Advance(time.Millisecond)
	StepTickers()
	tk.Stop()
	StepTickers()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if tk.IsActive() {
		t.Error("ticker still active after Stop")
	}
}

func TestTickersStepConcurrentlyWithStartStop(t *testing.T) {
	useManualClock(t)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				StepTickers()
			}
		}
	}()

	for i := 0; i < 200; i++ {
		tk := NewTicker(func(time.Duration) {})
		tk.Start()
		_ = tk.IsActive()
		tk.Stop()
	}
	close(stop)
	wg.Wait()

	if HasActiveTickers() {
		t.Error("all tickers were stopped")
	}
}

func TestTweenFloat64s(t *testing.T) {
	tw := TweenFloat64s([]float64{0, 1}, []float64{1, 3})
	got := tw.Evaluate(0.5)
	if len(got) != 2 || got[0] != 0.5 || got[1] != 2 {
		t.Errorf("Evaluate(0.5) = %v, want [0.5 2]", got)
	}
}
