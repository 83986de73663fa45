package png

import "testing"

func TestFlagsOf(t *testing.T) {
	tests := []struct {
		name string
		want TagFlags
	}{
		{"IHDR", TagFlags{}},
		{"tEXt", TagFlags{Ancillary: true, SafeToCopy: true}},
		{"gAMA", TagFlags{Ancillary: true}},
		{"prVt", TagFlags{Ancillary: true, Private: true, SafeToCopy: true}},
		{"IEnD", TagFlags{Reserved: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlagsOf(tt.name); got != tt.want {
				t.Errorf("FlagsOf(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFlagIndependence(t *testing.T) {
	// Toggling one flag must leave the other three untouched.
	base := "tEXt"
	toggles := []struct {
		name   string
		toggle func(*TagFlags)
	}{
		{"ancillary", func(f *TagFlags) { f.Ancillary = !f.Ancillary }},
		{"private", func(f *TagFlags) { f.Private = !f.Private }},
		{"reserved", func(f *TagFlags) { f.Reserved = !f.Reserved }},
		{"safe-to-copy", func(f *TagFlags) { f.SafeToCopy = !f.SafeToCopy }},
	}

	for i, tt := range toggles {
		t.Run(tt.name, func(t *testing.T) {
			before := FlagsOf(base)
			flags := before
			tt.toggle(&flags)
			after := FlagsOf(flags.ApplyTo(base))

			got := [4]bool{after.Ancillary, after.Private, after.Reserved, after.SafeToCopy}
			was := [4]bool{before.Ancillary, before.Private, before.Reserved, before.SafeToCopy}
			for j := range got {
				if j == i {
					if got[j] == was[j] {
						t.Errorf("flag %d did not toggle", j)
					}
					continue
				}
				if got[j] != was[j] {
					t.Errorf("flag %d changed from %v to %v", j, was[j], got[j])
				}
			}
		})
	}
}

func TestApplyToPreservesLetters(t *testing.T) {
	all := TagFlags{Ancillary: true, Private: true, Reserved: true, SafeToCopy: true}
	if got := all.ApplyTo("IHDR"); got != "ihdr" {
		t.Errorf("ApplyTo = %q, want %q", got, "ihdr")
	}
	if got := (TagFlags{}).ApplyTo("ihdr"); got != "IHDR" {
		t.Errorf("ApplyTo = %q, want %q", got, "IHDR")
	}
}

func TestApplyToRoundtrip(t *testing.T) {
	names := []string{"IHDR", "tEXt", "gAMA", "zzzz", "ABCD"}
	for _, name := range names {
		f := FlagsOf(name)
		if got := f.ApplyTo(name); got != name {
			t.Errorf("ApplyTo(FlagsOf(%q)) = %q", name, got)
		}
	}
}

func TestChunkSetFlags(t *testing.T) {
	c := mustChunk(t, "IHDR", nil)
	f := c.Flags()
	f.Ancillary = true
	c.SetFlags(f)
	if c.Name() != "iHDR" {
		t.Errorf("name = %q, want %q", c.Name(), "iHDR")
	}
	if !c.Flags().Ancillary || c.Flags().Private || c.Flags().Reserved || c.Flags().SafeToCopy {
		t.Errorf("flags = %+v", c.Flags())
	}
}
