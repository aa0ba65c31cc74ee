package dashboard

import (
	"testing"

	"github.com/careconnect/clinic-backend/internal/api"
)

func vitalsRow(temp, pulse, bp, oxygen string) api.VitalsResponse {
	return api.VitalsResponse{Temperature: temp, Pulse: pulse, BP: bp, Oxygen: oxygen}
}

func seriesByName(series []Series) map[string]Series {
	out := make(map[string]Series, len(series))
	for _, s := range series {
		out[s.Name] = s
	}
	return out
}

func TestNumericSeriesAllNumeric(t *testing.T) {
	vitals := []api.VitalsResponse{
		vitalsRow("98.6", "72", "120/80", "97"),
		vitalsRow("99.1", "80", "130/85", "96"),
	}

	series := NumericSeries(vitals)
	if len(series) != 4 {
		t.Fatalf("got %d series, want 4", len(series))
	}

	byName := seriesByName(series)
	bp, ok := byName["systolic_bp"]
	if !ok {
		t.Fatal("missing systolic_bp series")
	}
	if len(bp.Points) != 2 || bp.Points[0] != 120 || bp.Points[1] != 130 {
		t.Fatalf("systolic readings = %v, want [120 130]", bp.Points)
	}
	if bp.Max != 130 {
		t.Fatalf("systolic max = %v, want 130", bp.Max)
	}
}

func TestNumericSeriesDropsNonNumericColumns(t *testing.T) {
	vitals := []api.VitalsResponse{
		vitalsRow("98.6", "72", "120/80", "97"),
		vitalsRow("high", "75", "unknown", "98"),
	}

	byName := seriesByName(NumericSeries(vitals))
	if _, ok := byName["temperature"]; ok {
		t.Error("temperature kept despite a non-numeric value")
	}
	if _, ok := byName["systolic_bp"]; ok {
		t.Error("systolic_bp kept despite an unsplittable value")
	}
	if _, ok := byName["pulse"]; !ok {
		t.Error("pulse dropped despite all values parsing")
	}
	if _, ok := byName["oxygen"]; !ok {
		t.Error("oxygen dropped despite all values parsing")
	}
}

func TestNumericSeriesTolerantOfWhitespace(t *testing.T) {
	vitals := []api.VitalsResponse{vitalsRow(" 98.6 ", "72", "120 /80", "97")}

	byName := seriesByName(NumericSeries(vitals))
	if _, ok := byName["temperature"]; !ok {
		t.Error("temperature dropped over surrounding whitespace")
	}
	if _, ok := byName["systolic_bp"]; !ok {
		t.Error("systolic_bp dropped over whitespace before the slash")
	}
}

func TestNumericSeriesEmpty(t *testing.T) {
	if got := NumericSeries(nil); got != nil {
		t.Fatalf("expected nil for no vitals, got %v", got)
	}
}

func TestSeriesBars(t *testing.T) {
	s := Series{Points: []float64{50, 100, 25}, Max: 100}
	bars := s.Bars()
	want := []int{50, 100, 25}
	if len(bars) != len(want) {
		t.Fatalf("got %d bars, want %d", len(bars), len(want))
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("bars[%d] = %d, want %d", i, bars[i], want[i])
		}
	}

	zero := Series{Points: []float64{1, 2}}
	for _, b := range zero.Bars() {
		if b != 0 {
			t.Fatalf("zero-max series produced bar %d", b)
		}
	}
}

func TestChatStore(t *testing.T) {
	store := newChatStore()

	store.Append("s1", ChatMessage{Sender: "you", Text: "I have a fever"})
	store.Append("s1", ChatMessage{Sender: "bot", Text: "How long?"})
	store.Append("s2", ChatMessage{Sender: "you", Text: "unrelated"})

	got := store.Get("s1")
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0].Sender != "you" || got[1].Sender != "bot" {
		t.Fatalf("transcript order wrong: %+v", got)
	}

	// Mutating the copy must not touch the stored transcript.
	got[0].Text = "edited"
	if store.Get("s1")[0].Text == "edited" {
		t.Fatal("Get returned a live reference")
	}

	store.Reset("s1")
	if len(store.Get("s1")) != 0 {
		t.Fatal("reset left messages behind")
	}
	if len(store.Get("s2")) != 1 {
		t.Fatal("reset crossed sessions")
	}
}
