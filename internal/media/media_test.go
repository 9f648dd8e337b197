package media

import "testing"

func TestFoveationDescriptorMarshalIsSixteenBytes(t *testing.T) {
	d := FoveationDescriptor{FX: 0.1, FY: 0.2, Sigma: 0.3, Offset: 20}
	buf := d.Marshal()
	if len(buf) != 16 {
		t.Fatalf("marshaled descriptor is %d bytes, want 16", len(buf))
	}
}

func TestUnmarshalFoveationDescriptorRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 32} {
		if _, err := UnmarshalFoveationDescriptor(make([]byte, n)); err == nil {
			t.Fatalf("expected an error unmarshaling a %d-byte payload", n)
		}
	}
}

func TestFrameSetSideDataAllocatesLazily(t *testing.T) {
	f := &Frame{}
	if f.SideData != nil {
		t.Fatalf("zero-value Frame should have a nil SideData table")
	}
	f.SetSideData(SideDataFoveationDescriptor, []byte{1, 2, 3})
	if got := f.SideData[SideDataFoveationDescriptor]; len(got) != 3 {
		t.Fatalf("SetSideData did not store the payload")
	}
}
