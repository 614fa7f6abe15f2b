package hobby

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// AsString returns a path -- optionally including spline control points --
// as a (debugging) string. The string contains newlines if control point
// information is present. Otherwise it will include the knot coordinates in
// one line.
//
// Example, a circle of diameter 1 around (2,1):
//
//	(1,1) .. controls (1.0000,1.5523) and (1.4477,2.0000)
//	  .. (2,2) .. controls (2.5523,2.0000) and (3.0000,1.5523)
//	  .. (3,1) .. controls (3.0000,0.4477) and (2.5523,0.0000)
//	  .. (2,0) .. controls (1.4477,0.0000) and (1.0000,0.4477)
//	  .. cycle
//
// The format is not fully equivalent to MetaFont's, but close.
func AsString(path *Path, contr *Controls) string {
	var sb strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			if contr != nil {
				fmt.Fprintf(&sb, " and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				sb.WriteString(" .. ")
			}
		}
		sb.WriteString(ptstring(path.Z(i), false))
		if contr != nil && (i < path.N()-1 || path.IsCycle()) {
			fmt.Fprintf(&sb, " .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	if path.IsCycle() {
		if contr != nil {
			fmt.Fprintf(&sb, " and %s\n ", ptstring(contr.PreControl(0), true))
		}
		sb.WriteString(" .. cycle")
	}
	return sb.String()
}

func ptstring(p Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
