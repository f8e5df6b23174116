// Character position driven scanner over PVL label text. The cursor
// walks the raw bytes directly: labels are ASCII and the scanner is on
// the hot path when an embedded label sits in front of megabytes of
// pixel data.

package vicar

import (
	"strings"
)

// A value line that continues the previous one is marked by exactly
// this many leading spaces. The column count is part of the format:
// anything narrower or wider is an ordinary line.
const lineContinuationColumns = 37

var lineContinuationPrefix = strings.Repeat(" ", lineContinuationColumns)

// How far IsBlankLine scans ahead for a non space character before
// giving up and declaring the line blank.
const blankLineLookahead = 100

// PvlReader is a cursor over the full label text. Carriage returns are
// stripped at construction so line handling only deals with '\n'.
type PvlReader struct {
	content string
	pos     int
}

func NewPvlReader(content string) *PvlReader {
	return &PvlReader{
		content: filterLinefeeds(content),
	}
}

func filterLinefeeds(content string) string {
	return strings.ReplaceAll(content, "\r", "")
}

func (self *PvlReader) CharAt(indx int) (byte, error) {
	if indx >= len(self.content) {
		return 0, ErrEof
	}
	return self.content[indx], nil
}

// CharAtPosPlusN peeks at the character n positions past the cursor.
func (self *PvlReader) CharAtPosPlusN(n int) (byte, error) {
	return self.CharAt(self.pos + n)
}

func (self *PvlReader) CurrentChar() (byte, error) {
	return self.CharAt(self.pos)
}

func (self *PvlReader) PeekChar() (byte, error) {
	return self.CharAt(self.pos + 1)
}

func (self *PvlReader) NextChar() (byte, error) {
	self.pos++
	return self.CurrentChar()
}

func (self *PvlReader) Pos() int {
	return self.pos
}

func (self *PvlReader) IsEof() bool {
	return self.pos >= len(self.content)
}

func (self *PvlReader) HasNRemaining(n int) bool {
	return self.pos+n < len(self.content)
}

// Jump advances the cursor, clamping at end of input.
func (self *PvlReader) Jump(num_chars int) error {
	if self.IsEof() {
		return ErrEof
	}
	if self.pos+num_chars >= len(self.content) {
		num_chars = len(self.content) - self.pos
	}
	self.pos += num_chars
	return nil
}

func (self *PvlReader) IsAtLineStart() (bool, error) {
	if self.pos == 0 {
		return true, nil
	}
	c, err := self.CharAt(self.pos - 1)
	if err != nil {
		return false, err
	}
	return c == '\n' || c == '\r', nil
}

func (self *PvlReader) IsAtMultilineCommentStart() (bool, error) {
	if self.IsEof() || self.pos+1 >= len(self.content) {
		return false, nil
	}
	c, _ := self.CurrentChar()
	n, _ := self.PeekChar()
	return c == '/' && n == '*', nil
}

func (self *PvlReader) IsAtMultilineCommentEnd() (bool, error) {
	if self.pos+1 >= len(self.content) {
		return false, nil
	}
	c, _ := self.CurrentChar()
	n, _ := self.PeekChar()
	return c == '*' && n == '/', nil
}

// SkipMultilineComment consumes a comment and returns its interior
// text.
func (self *PvlReader) SkipMultilineComment() (string, error) {
	at_comment, err := self.IsAtMultilineCommentStart()
	if err != nil {
		return "", err
	}
	if !at_comment {
		return "", ErrCommentIsntComment
	}

	var comment_text strings.Builder
	for {
		at_end, err := self.IsAtMultilineCommentEnd()
		if err != nil {
			return "", err
		}
		if at_end {
			break
		}
		c, err := self.NextChar()
		if err != nil {
			return "", err
		}
		comment_text.WriteByte(c)
	}
	if err := self.Jump(2); err != nil {
		return "", err
	}

	text := comment_text.String()
	if len(text) < 2 {
		return "", nil
	}
	return text[1 : len(text)-1], nil
}

func (self *PvlReader) IsAtPointer() (bool, error) {
	c, err := self.CurrentChar()
	if err != nil {
		return false, err
	}
	return c == '^', nil
}

func (self *PvlReader) isAtKeyword(keyword string) (bool, error) {
	if !self.HasNRemaining(len(keyword)) {
		return false, nil
	}
	return self.content[self.pos:self.pos+len(keyword)] == keyword, nil
}

// IsAtGroup reports whether the current line opens a GROUP block. It
// is only meaningful at a line start.
func (self *PvlReader) IsAtGroup() (bool, error) {
	if !self.HasNRemaining(len("GROUP")) {
		return false, nil
	}
	at_start, err := self.IsAtLineStart()
	if err != nil {
		return false, err
	}
	if !at_start {
		return false, programmingError(
			"attempt to check if at group when not at start of line")
	}
	return self.isAtKeyword("GROUP")
}

func (self *PvlReader) IsAtObject() (bool, error) {
	return self.isAtKeyword("OBJECT")
}

// IsAtEnd reports whether the document terminating END keyword starts
// at the cursor.
func (self *PvlReader) IsAtEnd() bool {
	at_end, _ := self.isAtKeyword("END")
	return at_end
}

// ReadSymbol accumulates the left hand token of the current line, up
// to '=', the line end or end of input, and classifies it.
func (self *PvlReader) ReadSymbol() (Symbol, error) {
	at_continuation, err := self.IsAtValueLineContinuation()
	if err == nil && at_continuation {
		return Symbol{}, syntaxError(
			"value line continuation without a preceding key value pair")
	}
	at_start, err := self.IsAtLineStart()
	if err != nil {
		return Symbol{}, err
	}
	if !at_start {
		return Symbol{}, programmingError(
			"attempt to read a symbol when not at beginning of a line")
	}

	var symbol_text strings.Builder
	for !self.IsEof() {
		c, _ := self.CurrentChar()
		if c == '\n' || c == '\r' || c == '=' {
			break
		}
		symbol_text.WriteByte(c)
		self.NextChar()
	}

	text := strings.TrimSpace(symbol_text.String())
	switch {
	case text == "":
		return TagSymbol(SymbolBlankLine), nil
	case strings.HasPrefix(text, "^"):
		return PointerSymbol(text), nil
	case text == "GROUP":
		return TagSymbol(SymbolGroup), nil
	case text == "OBJECT":
		return TagSymbol(SymbolObject), nil
	case text == "END_GROUP":
		return TagSymbol(SymbolGroupEnd), nil
	case text == "END_OBJECT":
		return TagSymbol(SymbolObjectEnd), nil
	case text == "END":
		return TagSymbol(SymbolEnd), nil
	default:
		return KeySymbol(text), nil
	}
}

// ReadRemainingLine accumulates the rest of the current line, skipping
// over an "= " separator if one is present, and trims the result. The
// terminating newline is not consumed.
func (self *PvlReader) ReadRemainingLine() (string, error) {
	var line_text strings.Builder
	for !self.IsEof() {
		c, err := self.CurrentChar()
		if err != nil {
			return "", err
		}
		if c == '=' {
			if err := self.Jump(2); err != nil {
				return "", err
			}
			c, err = self.CurrentChar()
			if err != nil {
				break
			}
		}
		if c == '\n' || c == '\r' {
			break
		}
		line_text.WriteByte(c)
		if !self.IsEof() {
			self.NextChar()
		}
	}
	return strings.TrimSpace(line_text.String()), nil
}

// IsBlankLine looks ahead from a line start for any non space
// character before the next line terminator.
func (self *PvlReader) IsBlankLine() (bool, error) {
	at_start, err := self.IsAtLineStart()
	if err != nil {
		return false, err
	}
	if !at_start {
		return false, programmingError("blank line check when not at start of line")
	}
	if self.IsEof() {
		return false, ErrEof
	}

	found_non_ws := false
	for i := 0; i < blankLineLookahead; i++ {
		c, err := self.CharAtPosPlusN(i)
		if err != nil || c == '\n' {
			break
		}
		if c != ' ' {
			found_non_ws = true
		}
	}
	return !found_non_ws, nil
}

func (self *PvlReader) IsAtEquals() (bool, error) {
	c, err := self.CurrentChar()
	if err != nil {
		return false, err
	}
	return c == '=', nil
}

// IsAtValueLineContinuation reports whether the current line start is
// the fixed width run of spaces that marks a continuation of the
// previous value.
func (self *PvlReader) IsAtValueLineContinuation() (bool, error) {
	at_start, err := self.IsAtLineStart()
	if err != nil {
		return false, err
	}
	if !at_start {
		return false, nil
	}
	if self.pos+lineContinuationColumns >= len(self.content) {
		return false, ErrEof
	}
	return self.content[self.pos:self.pos+lineContinuationColumns] == lineContinuationPrefix, nil
}

// JumpToNextLine consumes any newline characters under the cursor. It
// is a no-op mid line; line content is consumed by the read methods.
func (self *PvlReader) JumpToNextLine() error {
	for self.pos <= len(self.content) {
		c, err := self.CharAt(self.pos)
		if err != nil {
			return err
		}
		if c != '\n' {
			break
		}
		self.NextChar()
	}
	return nil
}

func (self *PvlReader) RewindToLineBeginning() error {
	for self.pos != 0 {
		at_start, err := self.IsAtLineStart()
		if err != nil {
			return err
		}
		if at_start {
			break
		}
		self.pos--
	}
	return nil
}

// ReadKeyValuePair reads one logical KEY = VALUE entry starting at the
// current line, merging any continuation lines into the value with no
// separator, and leaves the cursor at the start of the following line.
func (self *PvlReader) ReadKeyValuePair() (KeyValuePair, error) {
	at_continuation, err := self.IsAtValueLineContinuation()
	if err == nil && at_continuation {
		return KeyValuePair{}, syntaxError(
			"value line continuation without a preceding key value pair")
	}
	at_start, err := self.IsAtLineStart()
	if err != nil {
		return KeyValuePair{}, err
	}
	if !at_start {
		return KeyValuePair{}, programmingError(
			"attempt to read a key value pair when not at beginning of a line")
	}

	key, err := self.ReadSymbol()
	if err != nil {
		return KeyValuePair{}, err
	}
	value_string, err := self.ReadRemainingLine()
	if err != nil {
		return KeyValuePair{}, err
	}

	if _, err := self.NextChar(); err != nil {
		return KeyValuePair{}, err
	}
	for {
		at_continuation, err := self.IsAtValueLineContinuation()
		if err != nil || !at_continuation {
			break
		}
		more, err := self.ReadRemainingLine()
		if err != nil {
			return KeyValuePair{}, err
		}
		value_string += more
		if _, err := self.NextChar(); err != nil {
			return KeyValuePair{}, err
		}
	}

	return KeyValuePair{
		Key:   key,
		Value: NewValue(value_string),
	}, nil
}
