// Lexical classification of the left hand token of a PVL line.

package vicar

type SymbolType uint8

const (
	SymbolPointer SymbolType = iota // ^NAME
	SymbolKey
	SymbolGroup
	SymbolObject
	SymbolBlankLine
	SymbolGroupEnd
	SymbolObjectEnd
	SymbolEnd
)

func (self SymbolType) String() string {
	switch self {
	case SymbolPointer:
		return "Pointer"
	case SymbolKey:
		return "Key"
	case SymbolGroup:
		return "Group"
	case SymbolObject:
		return "Object"
	case SymbolBlankLine:
		return "BlankLine"
	case SymbolGroupEnd:
		return "GroupEnd"
	case SymbolObjectEnd:
		return "ObjectEnd"
	case SymbolEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Only pointers and keys carry text; the remaining symbols are tags.
type Symbol struct {
	symbol_type SymbolType
	name        string
}

func KeySymbol(name string) Symbol {
	return Symbol{symbol_type: SymbolKey, name: name}
}

func PointerSymbol(name string) Symbol {
	return Symbol{symbol_type: SymbolPointer, name: name}
}

func TagSymbol(symbol_type SymbolType) Symbol {
	return Symbol{symbol_type: symbol_type}
}

func (self Symbol) Type() SymbolType {
	return self.symbol_type
}

// Name returns the text of a pointer or key symbol. The second return
// is false for tag only symbols.
func (self Symbol) Name() (string, bool) {
	switch self.symbol_type {
	case SymbolPointer, SymbolKey:
		return self.name, true
	default:
		return "", false
	}
}

func (self Symbol) String() string {
	if name, ok := self.Name(); ok {
		return self.symbol_type.String() + "(" + name + ")"
	}
	return self.symbol_type.String()
}
