package tilt

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var card = image.Rect(100, 100, 300, 200)

func TestAnglesFollowCursor(t *testing.T) {
	x, y := Angles(card, 200, 150)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = Angles(card, 250, 125)
	assert.InDelta(t, 7.5, y, 1e-9, "halfway to the right edge")
	assert.InDelta(t, 7.5, x, 1e-9, "halfway to the top edge")

	x, y = Angles(card, 100, 200)
	assert.InDelta(t, -MaxAngle, y, 1e-9)
	assert.InDelta(t, -MaxAngle, x, 1e-9)
}

func TestAnglesClampToMax(t *testing.T) {
	x, y := Angles(card, 5000, -5000)
	assert.Equal(t, MaxAngle, y)
	assert.Equal(t, MaxAngle, x)

	x, y = Angles(card, -5000, 5000)
	assert.Equal(t, -MaxAngle, y)
	assert.Equal(t, -MaxAngle, x)

	x, y = Angles(image.Rectangle{}, 10, 10)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestCardResetsWhenCursorLeaves(t *testing.T) {
	var c Card
	require.True(t, c.Update(card, mgl64.Vec2{290, 110}))
	assert.True(t, c.Active)
	assert.Greater(t, c.RotY, 0.0)
	assert.Greater(t, c.RotX, 0.0)
	assert.Equal(t, mgl64.Vec2{190, 10}, c.Shine)

	assert.False(t, c.Update(card, mgl64.Vec2{300, 110}), "max edge is outside")
	assert.Equal(t, Card{}, c)
}

func TestFlatQuadIsTheCard(t *testing.T) {
	var c Card
	q := c.Quad(card)
	want := [4]mgl64.Vec2{{100, 100}, {300, 100}, {300, 200}, {100, 200}}
	for i := range q {
		assert.InDelta(t, want[i].X(), q[i].X(), 1e-9)
		assert.InDelta(t, want[i].Y(), q[i].Y(), 1e-9)
	}
}

func TestTiltedQuadHasPerspective(t *testing.T) {
	c := Card{RotY: MaxAngle}
	q := c.Quad(card)
	left := q[3].Y() - q[0].Y()
	right := q[2].Y() - q[1].Y()
	assert.NotEqual(t, math.Round(left*1000), math.Round(right*1000))
	assert.Less(t, q[1].X()-q[0].X(), 200.0, "rotation narrows the card")

	c = Card{RotX: MaxAngle}
	q = c.Quad(card)
	top := q[1].X() - q[0].X()
	bottom := q[2].X() - q[3].X()
	assert.NotEqual(t, math.Round(top*1000), math.Round(bottom*1000))
}

func TestShineRadiusReachesFarthestCorner(t *testing.T) {
	c := Card{Shine: mgl64.Vec2{0, 0}}
	assert.InDelta(t, math.Hypot(200, 100)*ShineReach, c.ShineRadius(200, 100), 1e-9)

	c.Shine = mgl64.Vec2{100, 50}
	assert.InDelta(t, math.Hypot(100, 50)*ShineReach, c.ShineRadius(200, 100), 1e-9)
}
