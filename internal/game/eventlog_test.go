package game

import (
	"strings"
	"testing"
)

func TestEventLog_FilterAndCount(t *testing.T) {
	el := NewEventLog(false)
	el.Add(1, "growth", "node_placed", "id=5 from=0", 5)
	el.Add(2, "hazard", "pulse_fired", "node=3", 0)
	el.Add(3, "growth", "node_placed", "id=6 from=5", 6)

	if n := el.Count("growth", "node_placed"); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if n := len(el.Filter("growth", "")); n != 2 {
		t.Fatalf("category filter matched %d", n)
	}
	if n := len(el.Filter("", "pulse_fired")); n != 1 {
		t.Fatalf("key filter matched %d", n)
	}

	last, ok := el.LastOf("growth", "node_placed")
	if !ok || last.NumVal != 6 {
		t.Fatalf("last growth entry = %+v ok=%v", last, ok)
	}
	if !el.HasEntry("growth", "", "from=0") {
		t.Fatal("substring match failed")
	}
	if el.HasEntry("gate", "", "") {
		t.Fatal("matched a category that was never logged")
	}
}

func TestEventLog_VerboseGating(t *testing.T) {
	quiet := NewEventLog(false)
	quiet.AddVerbose(1, "player", "position", "x=1 y=2", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entry recorded on a quiet log")
	}

	loud := NewEventLog(true)
	loud.AddVerbose(1, "player", "position", "x=1 y=2", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entry dropped on a verbose log")
	}
}

func TestEventLog_Format(t *testing.T) {
	el := NewEventLog(false)
	el.Add(42, "growth", "node_placed", "id=7 from=3", 7)
	out := el.Format()
	if !strings.Contains(out, "[T=0042]") || !strings.Contains(out, "id=7 from=3") {
		t.Fatalf("format output %q", out)
	}
}
