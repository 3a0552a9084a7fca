package materials

import "testing"

func TestCoatingDesign(t *testing.T) {
	m := CoatingDesign()
	if err := m.Validate(); err != nil {
		t.Fatalf("as-designed coating failed validation: %v", err)
	}
	if len(m.Layers) != 2 {
		t.Fatalf("layer count = %d, want 2", len(m.Layers))
	}
	if m.Layers[0].Chemical != "MgF2" || m.Layers[1].Chemical != "Al" {
		t.Errorf("layer order = %s, %s; want MgF2 over Al",
			m.Layers[0].Chemical, m.Layers[1].Chemical)
	}
	if m.Substrate.Chemical != "SiO2" {
		t.Errorf("substrate = %s, want SiO2", m.Substrate.Chemical)
	}
}
