package analysis

import (
	"slices"

	"github.com/pable/soccerstats/internal/model"
)

// RadarPoint is one normalized axis of a radar profile.
type RadarPoint struct {
	Column string
	Value  float64 // raw statistic
	Scaled float64 // in [0, 1]
}

// Radar is a player's normalized profile.
type Radar struct {
	Name   string
	Points []RadarPoint
}

// RadarProfile min-max scales the player's own values over model.StatColumns.
func RadarProfile(p model.Player) Radar {
	values, _ := p.Vector(model.StatColumns)
	scaled := MinMaxScale(values)
	r := Radar{Name: p.Name, Points: make([]RadarPoint, len(values))}
	for i, col := range model.StatColumns {
		r.Points[i] = RadarPoint{Column: col, Value: values[i], Scaled: scaled[i]}
	}
	return r
}

// MinMaxScale maps values linearly onto [0, 1]. A constant input maps to all zeros.
func MinMaxScale(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := slices.Min(values), slices.Max(values)
	if hi == lo {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}
