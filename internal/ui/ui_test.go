package ui

import "testing"

func TestForegroundCyclesWithoutGray(t *testing.T) {
	tests := []struct {
		index int
		want  StackColor
	}{
		{0, Red},
		{4, Blue},
		{10, Black},
		{11, Red},
		{12, Orange},
		{-1, Black},
	}
	for _, tt := range tests {
		if got := ForegroundColor(tt.index); got != tt.want {
			t.Errorf("ForegroundColor(%d) = %s, want %s", tt.index, got, tt.want)
		}
	}
	for i := range 100 {
		if ForegroundColor(i) == Gray {
			t.Fatalf("ForegroundColor(%d) = gray", i)
		}
	}
}

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		name  string
		index int
		dark  bool
		want  bool
	}{
		{"light yellow", int(Yellow), false, true},
		{"light white", int(White), false, true},
		{"light light blue", int(LightBlue), false, true},
		{"light red", int(Red), false, false},
		{"light brown", int(Brown), false, false},
		{"dark brown", int(Brown), true, true},
		{"dark black", int(Black), true, true},
		{"dark yellow", int(Yellow), true, false},
		{"dark wraps to red", int(Gray), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, ok := BackgroundColor(tt.index, tt.dark)
			if ok != tt.want {
				t.Fatalf("BackgroundColor(%d, %v) ok = %v, want %v", tt.index, tt.dark, ok, tt.want)
			}
			if ok && bg != Gray {
				t.Errorf("background = %s, want gray", bg)
			}
		})
	}
}

func TestEntryStylesStandardTheme(t *testing.T) {
	s := NewStyles(DarkTheme())
	in, out := s.EntryStyles(3, false)
	if in.GetForeground() != s.EntryInput.GetForeground() || out.GetForeground() != s.EntryOutput.GetForeground() {
		t.Error("standard theme does not use the entry styles")
	}
	if _, ok := s.EntryBackground(int(Black), false); ok {
		t.Error("standard theme has a row background")
	}
	if _, ok := s.EntryBackground(int(Black), true); !ok {
		t.Error("rainbow theme on dark has no background for black")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestPadRightAndJoin(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight shortened its input: %q", got)
	}
	if got := JoinHorizontal(" | ", "a", "", "b"); got != "a | b" {
		t.Errorf("JoinHorizontal = %q", got)
	}
}
