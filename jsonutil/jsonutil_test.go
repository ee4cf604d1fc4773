package jsonutil_test

import (
	"testing"

	"github.com/mirrorkit/mirror/jsonutil"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestMarshalUnmarshal(t *testing.T) {
	original := user{Name: "alice", Age: 30}

	doc, err := jsonutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	restored, err := jsonutil.Unmarshal[user](doc)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip = %+v, want %+v", restored, original)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	if _, err := jsonutil.Unmarshal[user]("{not json"); err == nil {
		t.Error("Unmarshal() of invalid input should fail")
	}
}

func TestFragment_Scalar(t *testing.T) {
	doc := `{"user":{"name":"alice","age":30}}`

	frag, err := jsonutil.Fragment(doc, "user.name")
	if err != nil {
		t.Fatalf("Fragment() error: %v", err)
	}

	if frag != `"alice"` {
		t.Errorf("Fragment() = %s, want %q", frag, `"alice"`)
	}
}

func TestFragmentAs_Object(t *testing.T) {
	doc := `{"user":{"name":"alice","age":30},"other":true}`

	got, err := jsonutil.FragmentAs[user](doc, "user")
	if err != nil {
		t.Fatalf("FragmentAs() error: %v", err)
	}

	want := user{Name: "alice", Age: 30}
	if got != want {
		t.Errorf("FragmentAs() = %+v, want %+v", got, want)
	}
}

func TestFragmentAs_ArrayElement(t *testing.T) {
	doc := `{"users":[{"name":"alice","age":30},{"name":"bob","age":40}]}`

	got, err := jsonutil.FragmentAs[user](doc, "users[1]")
	if err != nil {
		t.Fatalf("FragmentAs() error: %v", err)
	}

	if got.Name != "bob" || got.Age != 40 {
		t.Errorf("FragmentAs() = %+v, want bob/40", got)
	}
}
