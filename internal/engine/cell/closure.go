package cell

import (
	"context"
	"slices"
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckClosure walks the cell graph from root and verifies that root declares
// every cell reachable from any cell. It returns the reachable cells ordered by root.
func CheckClosure(ctx context.Context, root *Cell) ([]*Cell, error) {
	visited := map[string]*Cell{root.root: root}
	queue := []*Cell{root}
	var missing []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, r := range current.KnownRoots() {
			if _, seen := visited[r]; seen {
				continue
			}
			if _, ok := root.knownRoots[r]; !ok {
				missing = append(missing, r)
			}
			next, err := current.CellIgnoringVisibilityCheck(ctx, r)
			if err != nil {
				return nil, err
			}
			visited[r] = next
			queue = append(queue, next)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		list := strings.Join(missing, ", ")
		err := zerr.Wrap(domain.ErrIncompleteCellMapping, "add "+list+" to the repositories of the root cell")
		err = zerr.With(err, "cell_root", root.root)
		return nil, zerr.With(err, "missing", list)
	}

	cells := make([]*Cell, 0, len(visited))
	for _, c := range visited {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b *Cell) int {
		return strings.Compare(a.root, b.root)
	})
	return cells, nil
}
