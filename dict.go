// Ordered dict export of parsed documents. Label order is meaningful
// to people reading dumps, so the export preserves it end to end.

package vicar

import (
	"github.com/Velocidex/ordereddict"
)

func propertiesAsDict(properties []KeyValuePair) *ordereddict.Dict {
	result := ordereddict.NewDict()
	for _, p := range properties {
		if name, ok := p.Key.Name(); ok {
			result.Set(name, p.Value.Raw())
		}
	}
	return result
}

// GroupingAsDict flattens a GROUP or OBJECT block into an ordered
// dict of raw property values.
func GroupingAsDict(g PropertyGrouping) *ordereddict.Dict {
	return propertiesAsDict(g.Properties())
}

// AsDict returns the document as nested ordered dicts: top level
// properties first, then groups and objects keyed by block name.
// Marshalling the result to JSON reproduces the label's own ordering.
func (self *Pvl) AsDict() *ordereddict.Dict {
	groups := ordereddict.NewDict()
	for _, g := range self.Groups {
		groups.Set(g.Name(), GroupingAsDict(g))
	}

	objects := ordereddict.NewDict()
	for _, o := range self.Objects {
		objects.Set(o.Name(), GroupingAsDict(o))
	}

	return ordereddict.NewDict().
		Set("properties", propertiesAsDict(self.Properties)).
		Set("groups", groups).
		Set("objects", objects)
}
