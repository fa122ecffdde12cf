package games

import (
	"bytes"
	"encoding/json"
	"errors"
)

// StatLine is a single named statistic with its upstream display value.
type StatLine struct {
	Name  string
	Value string
}

// StatLines is an insertion-ordered collection of statistics. Setting a name
// that is already present overwrites its value in place (last write wins)
// while keeping the position of the first insertion.
type StatLines struct {
	lines []StatLine
	index map[string]int
}

// NewStatLines builds an empty collection.
func NewStatLines() StatLines {
	return StatLines{index: make(map[string]int)}
}

// Set inserts or overwrites a statistic.
func (s *StatLines) Set(name, value string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if pos, ok := s.index[name]; ok {
		s.lines[pos].Value = value
		return
	}
	s.index[name] = len(s.lines)
	s.lines = append(s.lines, StatLine{Name: name, Value: value})
}

// Get returns the value for a stat name.
func (s StatLines) Get(name string) (string, bool) {
	pos, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.lines[pos].Value, true
}

// Len reports the number of distinct statistics.
func (s StatLines) Len() int {
	return len(s.lines)
}

// Names returns the stat names in insertion order.
func (s StatLines) Names() []string {
	names := make([]string, 0, len(s.lines))
	for _, line := range s.lines {
		names = append(names, line.Name)
	}
	return names
}

// ValueMap returns an order-free copy of the name to value mapping.
func (s StatLines) ValueMap() map[string]string {
	values := make(map[string]string, len(s.lines))
	for _, line := range s.lines {
		values[line.Name] = line.Value
	}
	return values
}

// MarshalJSON renders the collection as a JSON object preserving insertion order.
func (s StatLines) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, line := range s.lines {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(line.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(line.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the collection from a JSON object. Key order inside
// the object is preserved as insertion order.
func (s *StatLines) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("stats: expected JSON object")
	}

	*s = NewStatLines()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		s.Set(key, value)
	}

	_, err = dec.Token()
	return err
}
