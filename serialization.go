package chainmap

import (
	"encoding/json"

	"github.com/sugawarayuuta/sonnet"
)

// Assert serialization implementation
var _ json.Marshaler = (*Map[string, int])(nil)
var _ json.Unmarshaler = (*Map[string, int])(nil)

// ToJSON outputs the JSON representation of the map's elements. The key type
// has to be one the codec can use as an object key (strings, integer kinds,
// or a type implementing encoding.TextMarshaler).
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	snapshot := make(map[K]V, m.size)
	m.Each(func(key K, value V) {
		snapshot[key] = value
	})
	return sonnet.Marshal(snapshot)
}

// FromJSON populates the map's elements from the input JSON representation.
// Pairs already in the map stay unless the input replaces them.
func (m *Map[K, V]) FromJSON(data []byte) error {
	var src map[K]V
	if err := sonnet.Unmarshal(data, &src); err != nil {
		return err
	}
	m.PutAll(src)
	return nil
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}
