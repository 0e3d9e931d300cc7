package boolean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/geom"
)

func TestPathRoundTrip(t *testing.T) {
	c := geom.NewCurve(geom.Point{0, 0})
	c.LineTo(geom.Point{1, 0})
	c.LineTo(geom.Point{1, 1})
	c.LineTo(geom.Point{0, 1})

	path := toPath64(c, 0.01)
	require.Len(t, path, 4)

	back := pathToCurve(path, 0.01)
	require.True(t, back.IsClosed(1))
	assert.InDelta(t, 1.0, back.GetArea(), 1e-6)
}

func TestHolesLinkedDetectsRevisitedVertex(t *testing.T) {
	plain := geom.NewCurve(geom.Point{0, 0})
	plain.LineTo(geom.Point{1, 0})
	plain.LineTo(geom.Point{1, 1})
	plain.LineTo(geom.Point{0, 1})
	plain.LineTo(geom.Point{0, 0})

	e := ClipperEngine{}
	assert.False(t, e.HolesLinked([]geom.Curve{plain}, 1))

	bridged := geom.NewCurve(geom.Point{0, 0})
	bridged.LineTo(geom.Point{10, 0})
	bridged.LineTo(geom.Point{5, 1}) // bridge point into the hole
	bridged.LineTo(geom.Point{4, 4})
	bridged.LineTo(geom.Point{6, 4})
	bridged.LineTo(geom.Point{6, 2})
	bridged.LineTo(geom.Point{5, 1}) // revisits the bridge point
	bridged.LineTo(geom.Point{10, 10})
	bridged.LineTo(geom.Point{0, 10})
	bridged.LineTo(geom.Point{0, 0})

	assert.True(t, e.HolesLinked([]geom.Curve{bridged}, 1))
}
