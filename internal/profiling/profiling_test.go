package profiling

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	stop := Track("frame.Poll")
	time.Sleep(time.Millisecond)
	stop()

	snap := Snapshot()
	if snap["frame.Poll"] < time.Millisecond {
		t.Errorf("Expected at least 1ms recorded, got %v", snap["frame.Poll"])
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty totals after ResetFrame")
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["frame.Poll"] = 2 * time.Millisecond
	frameTotals["frame.Present"] = 3 * time.Millisecond
	frameTotals["render.Frame"] = 10 * time.Millisecond
	mu.Unlock()

	if got := SumWithPrefix("frame."); got != 5*time.Millisecond {
		t.Errorf("Expected 5ms, got %v", got)
	}
	if got := SumWithPrefix("hud."); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}

	top := TopN(2)
	if !strings.HasPrefix(top, "render.Frame:10.0ms") {
		t.Errorf("Expected render.Frame first, got %q", top)
	}
	if strings.Count(top, ",") != 1 {
		t.Errorf("Expected two entries, got %q", top)
	}
	if got := TopN(10); strings.Count(got, ",") != 2 {
		t.Errorf("Expected all three entries, got %q", got)
	}
	ResetFrame()
}

func TestTrackConcurrent(t *testing.T) {
	ResetFrame()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer Track("render.Band")()
		}()
	}
	wg.Wait()
	if _, ok := Snapshot()["render.Band"]; !ok {
		t.Errorf("Expected render.Band to be recorded")
	}
	ResetFrame()
}
