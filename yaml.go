// YAML export of parsed documents. The Velocidex yaml fork keeps
// MapSlice ordering, so a dumped label round trips in its own order.

package vicar

import (
	"github.com/Velocidex/yaml"
)

func propertiesAsMapSlice(properties []KeyValuePair) yaml.MapSlice {
	result := yaml.MapSlice{}
	for _, p := range properties {
		if name, ok := p.Key.Name(); ok {
			result = append(result, yaml.MapItem{Key: name, Value: p.Value.Raw()})
		}
	}
	return result
}

// AsYaml renders the document as ordered YAML: top level properties,
// then one section per group and object.
func (self *Pvl) AsYaml() (string, error) {
	document := yaml.MapSlice{
		yaml.MapItem{Key: "properties", Value: propertiesAsMapSlice(self.Properties)},
	}

	groups := yaml.MapSlice{}
	for _, g := range self.Groups {
		groups = append(groups, yaml.MapItem{
			Key:   g.Name(),
			Value: propertiesAsMapSlice(g.Properties()),
		})
	}
	document = append(document, yaml.MapItem{Key: "groups", Value: groups})

	objects := yaml.MapSlice{}
	for _, o := range self.Objects {
		objects = append(objects, yaml.MapItem{
			Key:   o.Name(),
			Value: propertiesAsMapSlice(o.Properties()),
		})
	}
	document = append(document, yaml.MapItem{Key: "objects", Value: objects})

	out, err := yaml.Marshal(document)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
