package serialization

// Serializer converts Go values to and from byte arrays in one format.
// The command-line converter picks an implementation per Format.
type Serializer interface {
	// Serialize returns the byte representation of v.
	Serialize(v any) ([]byte, error)

	// Deserialize populates the value v points to from data.
	Deserialize(data []byte, v any) error
}
