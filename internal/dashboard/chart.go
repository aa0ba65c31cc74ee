package dashboard

import (
	"strconv"
	"strings"

	"github.com/careconnect/clinic-backend/internal/api"
)

// Series is one chartable vitals column: every value parsed as a number.
type Series struct {
	Name   string
	Points []float64
	Max    float64
}

// Bars converts the points to percentage widths for a simple bar rendering.
func (s Series) Bars() []int {
	bars := make([]int, 0, len(s.Points))
	for _, p := range s.Points {
		if s.Max <= 0 {
			bars = append(bars, 0)
			continue
		}
		bars = append(bars, int(p/s.Max*100))
	}
	return bars
}

// NumericSeries inspects the free-text vitals columns and keeps the ones
// where every recorded value parses as a number. Blood pressure is split on
// the slash and charted as its systolic reading.
func NumericSeries(vitals []api.VitalsResponse) []Series {
	if len(vitals) == 0 {
		return nil
	}

	columns := []struct {
		name  string
		value func(api.VitalsResponse) string
	}{
		{"temperature", func(v api.VitalsResponse) string { return v.Temperature }},
		{"pulse", func(v api.VitalsResponse) string { return v.Pulse }},
		{"systolic_bp", func(v api.VitalsResponse) string { sys, _, _ := strings.Cut(v.BP, "/"); return sys }},
		{"oxygen", func(v api.VitalsResponse) string { return v.Oxygen }},
	}

	var result []Series
	for _, col := range columns {
		points := make([]float64, 0, len(vitals))
		ok := true
		for _, v := range vitals {
			f, err := strconv.ParseFloat(strings.TrimSpace(col.value(v)), 64)
			if err != nil {
				ok = false
				break
			}
			points = append(points, f)
		}
		if !ok {
			continue
		}

		s := Series{Name: col.name, Points: points}
		for _, p := range points {
			if p > s.Max {
				s.Max = p
			}
		}
		result = append(result, s)
	}

	return result
}
