package detect

import (
	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// Density returns the fraction of present cells inside region, in [0, 1].
func Density(g grid.Grid, region models.Region) float64 {
	total := region.Rows() * region.Cols()
	if total <= 0 {
		return 0
	}
	return float64(countNonEmptyCells(g, region)) / float64(total)
}

// countNonEmptyCells counts present cells within region.
func countNonEmptyCells(g grid.Grid, region models.Region) int {
	count := 0
	for row := region.StartRow; row <= region.EndRow; row++ {
		for col := region.StartCol; col <= region.EndCol; col++ {
			if !g.ValueAt(row, col).IsAbsent() {
				count++
			}
		}
	}
	return count
}
