package clock

import (
	"testing"
	"time"
)

func TestFakeAdvanceFiresTicker(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	f := NewFake(start)
	tk := f.NewTicker(time.Second)

	f.Advance(500 * time.Millisecond)
	select {
	case <-tk.C():
		t.Fatal("ticker fired before its period elapsed")
	default:
	}

	f.Advance(500 * time.Millisecond)
	select {
	case got := <-tk.C():
		if !got.Equal(start.Add(time.Second)) {
			t.Errorf("tick time = %v, want %v", got, start.Add(time.Second))
		}
	default:
		t.Fatal("ticker did not fire after one period")
	}
}

func TestFakeStoppedTickerIsSilent(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	tk := f.NewTicker(100 * time.Millisecond)
	if f.Tickers() != 1 {
		t.Fatalf("Tickers() = %d, want 1", f.Tickers())
	}

	tk.Stop()
	f.Advance(time.Second)

	select {
	case <-tk.C():
		t.Fatal("stopped ticker fired")
	default:
	}
	if f.Tickers() != 0 {
		t.Errorf("Tickers() = %d after Stop, want 0", f.Tickers())
	}
}

func TestFakeSetDoesNotFire(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	tk := f.NewTicker(time.Second)
	f.Set(time.Unix(10, 0))

	select {
	case <-tk.C():
		t.Fatal("Set should not fire tickers")
	default:
	}
	if got := f.Now(); !got.Equal(time.Unix(10, 0)) {
		t.Errorf("Now() = %v, want %v", got, time.Unix(10, 0))
	}
}
