package angle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// cmpAngles compares angles with the package tolerance, so that ranges
// built from degrees diff cleanly against ranges built from radians.
var cmpAngles = cmp.Comparer(Angle.Equal)
