package yaml

import "testing"

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type payload struct {
		Name   string   `yaml:"name"`
		Values []string `yaml:"values"`
	}

	original := payload{Name: "test", Values: []string{"a", "b"}}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored payload
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || len(restored.Values) != 2 {
		t.Errorf("round-trip = %+v, want %+v", restored, original)
	}
}
