package key

import "testing"

func TestHostFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Host
	}{
		{"darwin", HostMac},
		{"ios", HostMac},
		{"windows", HostWindows},
		{"linux", HostOther},
		{"freebsd", HostOther},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := hostFromGOOS(tt.goos); got != tt.want {
				t.Errorf("hostFromGOOS(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestParseHost(t *testing.T) {
	tests := []struct {
		name    string
		want    Host
		wantErr bool
	}{
		{"mac", HostMac, false},
		{"Darwin", HostMac, false},
		{"windows", HostWindows, false},
		{"win", HostWindows, false},
		{"linux", HostOther, false},
		{"", HostOther, false},
		{"amiga", HostOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHost(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHost(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHost(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMetaRendersPerHost(t *testing.T) {
	meta := Keyboard(Named(KeyMeta), CodeMeta)

	tests := []struct {
		host Host
		want string
	}{
		{HostMac, "Cmd"},
		{HostWindows, "Win"},
		{HostOther, "Meta"},
	}

	for _, tt := range tests {
		t.Run(tt.host.String(), func(t *testing.T) {
			if got := meta.Render(tt.host); got != tt.want {
				t.Errorf("Render(%v) = %q, want %q", tt.host, got, tt.want)
			}
		})
	}
}

func TestOnlyMetaDependsOnHost(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		if k == KeyMeta {
			continue
		}
		tok := Keyboard(Named(k), CodeUnidentified)
		other := tok.Render(HostOther)
		if mac := tok.Render(HostMac); mac != other {
			t.Errorf("%v: Render(mac) = %q, Render(other) = %q", k, mac, other)
		}
		if win := tok.Render(HostWindows); win != other {
			t.Errorf("%v: Render(windows) = %q, Render(other) = %q", k, win, other)
		}
	}
}

func TestStringUsesCurrentHost(t *testing.T) {
	meta := MustParse("meta")
	if got, want := meta.String(), meta.Render(CurrentHost()); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
