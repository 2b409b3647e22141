package blocktypes

import "testing"

func TestRegistryLoadsEmbeddedCatalog(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	for _, id := range []string{"text", "heading", "todo", "table", "code", "divider", "image", "file"} {
		if !registry.Known(id) {
			t.Errorf("Known(%q) = false, want true", id)
		}
	}
	if registry.Known("hologram") {
		t.Error("Known(hologram) = true, want false")
	}
}

func TestRegistryGet(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	bt, err := registry.Get("image")
	if err != nil {
		t.Fatalf("Get(image): %v", err)
	}
	if bt.ID != "image" {
		t.Errorf("ID = %q, want image", bt.ID)
	}
	if !bt.FileBearing {
		t.Error("image should be file-bearing")
	}

	if _, err := registry.Get("hologram"); err == nil {
		t.Error("Get(hologram) should fail")
	}
}

func TestRegistryFileBearing(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	got := registry.FileBearing()
	want := []string{"file", "image"}
	if len(got) != len(want) {
		t.Fatalf("FileBearing() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FileBearing() = %v, want sorted %v", got, want)
		}
	}
}
