// Public domain.

package aspect

// pointNames is the reference point catalog.  A point's ID is its index.
var pointNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
	MeanNode, TrueNode, "Chiron",
	Ascendant, MediumCoeli, Descendant, ImumCoeli,
	"Mean_Lilith", MeanSouthNode, TrueSouthNode, "True_Lilith",
	"Earth", "Pholus", "Ceres", "Pallas", "Juno", "Vesta",
	"Eris", "Sedna", "Haumea", "Makemake", "Ixion", "Orcus", "Quaoar",
	"Regulus", "Spica",
	"Pars_Fortunae", "Pars_Spiritus", "Pars_Amoris", "Pars_Fidei",
	"Vertex", "Anti_Vertex",
}

// PointIDs returns a new copy of the reference table of point names to
// numeric IDs used by report and chart collaborators.
func PointIDs() map[string]int {
	m := make(map[string]int, len(pointNames))
	for id, n := range pointNames {
		m[n] = id
	}
	return m
}

// idTable resolves names against a table, Options.PointIDs if given.
type idTable map[string]int

func (t idTable) lookup(name string) (int, error) {
	if id, ok := t[name]; ok {
		return id, nil
	}
	return 0, &LookupError{Name: name}
}

// PointID returns the reference ID of a point name.  Names outside the
// reference table return a *LookupError.
func PointID(name string) (int, error) {
	for id, n := range pointNames {
		if n == name {
			return id, nil
		}
	}
	return 0, &LookupError{Name: name}
}
