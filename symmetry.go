// A lines-of-symmetry finder for 2D point sets.
//
// This package takes a finite set of points with floating-point coordinates
// and returns every line across which the set mirrors onto itself, comparing
// coordinates within a tolerance rather than exactly.
package symmetry

import "github.com/symfind/symmetry/advanced"

type Point = advanced.Point
type Line = advanced.Line
type Config = advanced.Config
type Result = advanced.Result

// DefaultConfig is re-exported for callers tuning the tolerance or the
// high-degree harvesting flag before calling FindWithConfig.
var DefaultConfig = advanced.DefaultConfig

// Find returns all lines of symmetry of the given points under the default
// configuration (tolerance 1e-6, harvesting on).
//
// The order of the points is irrelevant and duplicates are ignored. Fewer
// than two distinct points makes every line a trivial symmetry; the result
// reports that as Unbounded instead of enumerating lines. See the readme for
// more details.
func Find(points []Point) (*Result, error) {
	return FindWithConfig(points, advanced.DefaultConfig())
}

// FindWithConfig is Find with an explicit configuration.
func FindWithConfig(points []Point, config Config) (result *Result, err error) {
	defer func() {
		recoveredErr := advanced.HandleSymmetryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.FindLinesOfSymmetry(points, config), nil
}
