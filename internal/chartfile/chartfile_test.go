// Public domain.

package chartfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniakeys/aspects/aspect"
)

const alice = `
name: Alice
active: [Sun, Ascendant]
points:
  - name: Sun
    position: 10
    speed: 1
  - name: Moon
    position: 70.5
    speed: 13.2
  - name: Ascendant
    position: 100.5
  - name: Mean_Node
    position: 205
    speed: -0.053
  - name: Chiron
    kind: other-point
    position: 359.5
`

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader(alice))
	require.NoError(t, err)
	assert.Equal(t, "Alice", s.Name)
	assert.Equal(t, []string{"Sun", "Ascendant"}, s.Active)
	require.Len(t, s.Points, 5)

	sun := s.Points[0]
	assert.Equal(t, "Sun", sun.Name)
	assert.Equal(t, 10., sun.Position)
	require.NotNil(t, sun.Speed)
	assert.Equal(t, 1., *sun.Speed)
	assert.Equal(t, aspect.Planet, sun.Kind)

	asc := s.Points[2]
	assert.Nil(t, asc.Speed)
	assert.Equal(t, aspect.Axis, asc.Kind)
	assert.Equal(t, aspect.LunarNode, s.Points[3].Kind)
	assert.Equal(t, aspect.OtherPoint, s.Points[4].Kind)
	assert.Equal(t, -.053, *s.Points[3].Speed)

	// the chart feeds the engine directly
	cs, err := aspect.SingleChart(s, nil)
	require.NoError(t, err)
	require.Len(t, cs.All, 1)
	assert.Equal(t, "square", cs.All[0].Aspect)
}

func TestReadErrors(t *testing.T) {
	for _, c := range []struct {
		name, doc string
	}{
		{"empty", ""},
		{"no name", "points:\n  - name: Sun\n    position: 1\n"},
		{"no points", "name: A\n"},
		{"point name", "name: A\npoints:\n  - position: 1\n"},
		{"duplicate", "name: A\npoints:\n  - name: Sun\n    position: 1\n  - name: Sun\n    position: 2\n"},
		{"no position", "name: A\npoints:\n  - name: Sun\n"},
		{"position range", "name: A\npoints:\n  - name: Sun\n    position: 360\n"},
		{"negative position", "name: A\npoints:\n  - name: Sun\n    position: -1\n"},
		{"active", "name: A\nactive: [Moon]\npoints:\n  - name: Sun\n    position: 1\n"},
	} {
		_, err := Read(strings.NewReader(c.doc))
		var fe *FormatError
		assert.True(t, errors.As(err, &fe), "%s: got %v", c.name, err)
	}
	for _, c := range []struct {
		name, doc string
	}{
		{"unknown key", "name: A\ncolor: red\npoints:\n  - name: Sun\n    position: 1\n"},
		{"kind", "name: A\npoints:\n  - name: Sun\n    kind: star\n    position: 1\n"},
		{"syntax", "name: [A\n"},
	} {
		_, err := Read(strings.NewReader(c.doc))
		assert.Error(t, err, c.name)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "alice.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(alice), 0o644))
	s, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "Alice", s.Name)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: B\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
