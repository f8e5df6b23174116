// The PVL structural parser: turns label text into a document of top
// level properties, GROUP blocks and OBJECT blocks.

package vicar

import (
	"fmt"
	"os"
)

// KeyValuePair is one logical KEY = VALUE entry. Continuation lines
// have already been merged by the scanner before one is constructed.
type KeyValuePair struct {
	Key   Symbol
	Value Value
}

// PropertyGrouping is the capability shared by GROUP and OBJECT
// blocks: a name, an ordered property list and lookup by name. The
// two block types are structurally identical apart from their tag.
type PropertyGrouping interface {
	Name() string
	Properties() []KeyValuePair
	TypeOf() SymbolType
	GetProperty(name string) (KeyValuePair, error)
	HasProperty(name string) bool
}

// Lookup matches either a Key or a Pointer symbol whose text equals
// the query, case sensitively, returning the first match in insertion
// order.
func findProperty(properties []KeyValuePair, name string) (KeyValuePair, error) {
	for _, p := range properties {
		if n, ok := p.Key.Name(); ok && n == name {
			return p, nil
		}
	}
	return KeyValuePair{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, name)
}

type Group struct {
	name       string
	properties []KeyValuePair
}

func (self *Group) Name() string {
	return self.name
}

func (self *Group) Properties() []KeyValuePair {
	return self.properties
}

func (self *Group) TypeOf() SymbolType {
	return SymbolGroup
}

func (self *Group) GetProperty(name string) (KeyValuePair, error) {
	return findProperty(self.properties, name)
}

func (self *Group) HasProperty(name string) bool {
	_, err := findProperty(self.properties, name)
	return err == nil
}

type Object struct {
	name       string
	properties []KeyValuePair
}

func (self *Object) Name() string {
	return self.name
}

func (self *Object) Properties() []KeyValuePair {
	return self.properties
}

func (self *Object) TypeOf() SymbolType {
	return SymbolObject
}

func (self *Object) GetProperty(name string) (KeyValuePair, error) {
	return findProperty(self.properties, name)
}

func (self *Object) HasProperty(name string) bool {
	_, err := findProperty(self.properties, name)
	return err == nil
}

// skipBlankLine consumes a blank line, spaces included, leaving the
// cursor at the start of the following line.
func skipBlankLine(reader *PvlReader) error {
	for {
		c, err := reader.CurrentChar()
		if err != nil {
			return err
		}
		reader.NextChar()
		if c == '\n' {
			return nil
		}
	}
}

// readGrouping reads the block declaration line, reinterprets its
// value as the block name, then accumulates properties until the
// closing symbol, which is consumed but not stored.
func readGrouping(reader *PvlReader, end_symbol SymbolType) (string, []KeyValuePair, error) {
	declaration, err := reader.ReadKeyValuePair()
	if err != nil {
		return "", nil, err
	}
	name, err := declaration.Value.ParseFlag()
	if err != nil {
		return "", nil, err
	}

	var properties []KeyValuePair
	for !reader.IsEof() {
		blank, err := reader.IsBlankLine()
		if err != nil {
			return "", nil, err
		}
		if blank {
			if err := skipBlankLine(reader); err != nil {
				return "", nil, err
			}
			continue
		}

		kvp, err := reader.ReadKeyValuePair()
		if err != nil {
			return "", nil, err
		}
		if kvp.Key.Type() == end_symbol {
			break
		}
		properties = append(properties, kvp)
	}
	return name, properties, nil
}

// ReadGroup parses a GROUP ... END_GROUP block. The cursor must be
// positioned at the GROUP declaration line.
func ReadGroup(reader *PvlReader) (*Group, error) {
	if reader.IsEof() {
		return nil, ErrEof
	}
	at_group, err := reader.IsAtGroup()
	if err != nil {
		return nil, err
	}
	if !at_group {
		return nil, programmingError("attempted to read a group when not at a group start")
	}

	name, properties, err := readGrouping(reader, SymbolGroupEnd)
	if err != nil {
		return nil, err
	}
	return &Group{name: name, properties: properties}, nil
}

// ReadObject parses an OBJECT ... END_OBJECT block. The cursor must
// be positioned at the OBJECT declaration line.
func ReadObject(reader *PvlReader) (*Object, error) {
	if reader.IsEof() {
		return nil, ErrEof
	}
	at_object, err := reader.IsAtObject()
	if err != nil {
		return nil, err
	}
	if !at_object {
		return nil, programmingError("attempted to read an object when not at an object start")
	}

	name, properties, err := readGrouping(reader, SymbolObjectEnd)
	if err != nil {
		return nil, err
	}
	return &Object{name: name, properties: properties}, nil
}

// Pvl is a parsed document. It is constructed by a single pass over
// the label text and immutable afterwards.
type Pvl struct {
	Properties []KeyValuePair
	Groups     []*Group
	Objects    []*Object
}

// LoadPvl reads and parses a PVL label file. The bytes are taken as
// text as-is; PVL labels are ASCII and any binary trailing an embedded
// label is terminated by the END keyword before it is reached.
func LoadPvl(file_path string) (*Pvl, error) {
	data, err := os.ReadFile(file_path)
	if err != nil {
		return nil, labelError(err)
	}
	return ParsePvl(string(data))
}

// ParsePvl parses the contents of a PVL formatted label.
func ParsePvl(content string) (*Pvl, error) {
	pvl := &Pvl{}
	reader := NewPvlReader(content)

	for !reader.IsEof() && !reader.IsAtEnd() {
		at_comment, err := reader.IsAtMultilineCommentStart()
		if err != nil {
			return nil, err
		}
		if at_comment {
			if _, err := reader.SkipMultilineComment(); err != nil {
				return nil, err
			}
		} else if at_start, _ := reader.IsAtLineStart(); at_start {
			blank, err := reader.IsBlankLine()
			if err != nil {
				return nil, err
			}
			if blank {
				// A blank tail with no trailing newline is just the
				// end of the document.
				if err := skipBlankLine(reader); err != nil {
					break
				}
			} else {
				at_group, err := reader.IsAtGroup()
				if err != nil {
					return nil, err
				}
				at_object, err := reader.IsAtObject()
				if err != nil {
					return nil, err
				}

				if at_group {
					group, err := ReadGroup(reader)
					if err != nil {
						return nil, err
					}
					pvl.Groups = append(pvl.Groups, group)
				} else if at_object {
					object, err := ReadObject(reader)
					if err != nil {
						return nil, err
					}
					pvl.Objects = append(pvl.Objects, object)
				} else {
					kvp, err := reader.ReadKeyValuePair()
					if err != nil {
						return nil, err
					}
					if kvp.Key.Type() == SymbolEnd {
						break
					}
					pvl.Properties = append(pvl.Properties, kvp)
				}
			}
		}

		if !reader.IsEof() && !reader.IsAtEnd() {
			if err := reader.JumpToNextLine(); err != nil {
				return nil, err
			}
		}
	}
	return pvl, nil
}

func (self *Pvl) HasProperty(name string) bool {
	_, err := self.GetProperty(name)
	return err == nil
}

func (self *Pvl) GetProperty(name string) (KeyValuePair, error) {
	return findProperty(self.Properties, name)
}

func (self *Pvl) GetGroup(name string) (*Group, error) {
	for _, g := range self.Groups {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: group %s", ErrPropertyNotFound, name)
}

func (self *Pvl) GetObject(name string) (*Object, error) {
	for _, o := range self.Objects {
		if o.Name() == name {
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w: object %s", ErrPropertyNotFound, name)
}
