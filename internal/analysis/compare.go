// Package analysis holds the dashboard views computed from a player table:
// head-to-head comparison, rankings, the position×team goals matrix and radar
// profiles.
package analysis

import (
	"fmt"

	"github.com/pable/soccerstats/internal/model"
)

// Verdict is the outcome of comparing two values.
type Verdict int

const (
	Tie Verdict = iota
	LeftWins
	RightWins
)

func (v Verdict) String() string {
	switch v {
	case LeftWins:
		return "left"
	case RightWins:
		return "right"
	default:
		return "tie"
	}
}

// CategoryResult is the comparison of one statistic.
type CategoryResult struct {
	Column  string
	Label   string
	Left    float64
	Right   float64
	Verdict Verdict
}

// Comparison is a full head-to-head report.
type Comparison struct {
	LeftName   string
	RightName  string
	Categories []CategoryResult
	LeftScore  float64 // percentage of categories won by the left player
	RightScore float64
	Overall    Verdict
}

// CompareVectors scores two stat vectors over categories. A category is won on a
// strictly greater value; ties count for neither player, so a fully tied
// comparison scores 0 for both.
func CompareVectors(leftName, rightName string, categories []string, left, right []float64) (Comparison, error) {
	if len(categories) == 0 {
		return Comparison{}, fmt.Errorf("no categories to compare")
	}
	if len(left) != len(categories) || len(right) != len(categories) {
		return Comparison{}, fmt.Errorf("vector lengths %d/%d do not match %d categories",
			len(left), len(right), len(categories))
	}

	c := Comparison{LeftName: leftName, RightName: rightName}
	var leftWins, rightWins int
	for i, col := range categories {
		r := CategoryResult{Column: col, Label: model.StatLabel(col), Left: left[i], Right: right[i]}
		switch {
		case left[i] > right[i]:
			r.Verdict = LeftWins
			leftWins++
		case right[i] > left[i]:
			r.Verdict = RightWins
			rightWins++
		}
		c.Categories = append(c.Categories, r)
	}

	total := float64(len(categories))
	c.LeftScore = float64(leftWins) / total * 100
	c.RightScore = float64(rightWins) / total * 100
	switch {
	case c.LeftScore > c.RightScore:
		c.Overall = LeftWins
	case c.RightScore > c.LeftScore:
		c.Overall = RightWins
	}
	return c, nil
}

// ComparePlayers compares two players over model.StatColumns.
func ComparePlayers(left, right model.Player) (Comparison, error) {
	return CompareOn(left, right, model.StatColumns)
}

// CompareOn compares two players over the given stat columns.
func CompareOn(left, right model.Player, categories []string) (Comparison, error) {
	lv, err := left.Vector(categories)
	if err != nil {
		return Comparison{}, err
	}
	rv, err := right.Vector(categories)
	if err != nil {
		return Comparison{}, err
	}
	return CompareVectors(left.Name, right.Name, categories, lv, rv)
}

// Detail returns the textual verdict of one category.
func (c Comparison) Detail(r CategoryResult) string {
	switch r.Verdict {
	case LeftWins:
		return fmt.Sprintf("%s: %s is better", r.Label, c.LeftName)
	case RightWins:
		return fmt.Sprintf("%s: %s is better", r.Label, c.RightName)
	default:
		return fmt.Sprintf("%s: tie", r.Label)
	}
}

// Details returns Detail for every category, in category order.
func (c Comparison) Details() []string {
	out := make([]string, len(c.Categories))
	for i, r := range c.Categories {
		out[i] = c.Detail(r)
	}
	return out
}

// Summary returns the overall verdict.
func (c Comparison) Summary() string {
	switch c.Overall {
	case LeftWins:
		return fmt.Sprintf("%s is better overall than %s", c.LeftName, c.RightName)
	case RightWins:
		return fmt.Sprintf("%s is better overall than %s", c.RightName, c.LeftName)
	default:
		return fmt.Sprintf("%s and %s are equal overall", c.LeftName, c.RightName)
	}
}
