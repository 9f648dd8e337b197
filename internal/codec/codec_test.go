package codec

import "testing"

func TestParseID(t *testing.T) {
	cases := []struct {
		name string
		want ID
		ok   bool
	}{
		{"", H264, true},
		{"h264", H264, true},
		{"H264", H264, true},
		{"avc", H264, true},
		{"h265", H265, true},
		{"HEVC", H265, true},
		{"vp9", H264, false},
	}
	for _, c := range cases {
		got, ok := ParseID(c.name)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseID(%q) = (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestDefaultOptionsMatchesOptionProfile(t *testing.T) {
	for _, id := range []ID{H264, H265} {
		opts := DefaultOptions(id)
		if opts.Preset != "ultrafast" || opts.Tune != "zerolatency" || opts.AQMode != "autovariance" || opts.GOPSize != 3 {
			t.Errorf("DefaultOptions(%v) = %+v, unexpected profile", id, opts)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOK:          "OK",
		StatusNeedInput:   "NEED_INPUT",
		StatusEndOfStream: "END_OF_STREAM",
		StatusInvalid:     "INVALID",
		StatusNoMemory:    "NO_MEMORY",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
