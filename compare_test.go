package normdecimal

import (
	"testing"
)

func TestDecimal_Cmp(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		{"-2", "-2", 0},
		{"-2", "-1", -1},
		{"-2", "0", -1},
		{"-2", "1", -1},
		{"0", "0", 0},
		{"0", "0.000", 0},
		{"1", "1.0", 0},
		{"2", "2.00", 0},
		{"1.5", "1.25", 1},
		{"1.25", "1.5", -1},
		{"0.1", "0.09", 1},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		e := MustParse(tt.e)
		got := d.Cmp(e)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", d, e, got, tt.want)
		}
		if eq := d.Equal(e); eq != (tt.want == 0) {
			t.Errorf("%q.Equal(%q) = %v, want %v", d, e, eq, tt.want == 0)
		}
		if eq := d == e; eq != (tt.want == 0) {
			t.Errorf("%q == %q is %v, want %v", d, e, eq, tt.want == 0)
		}
		if less := d.Less(e); less != (tt.want < 0) {
			t.Errorf("%q.Less(%q) = %v, want %v", d, e, less, tt.want < 0)
		}
	}
}

func TestDecimal_MapKey(t *testing.T) {
	m := make(map[Decimal]int)
	for _, s := range []string{"2", "2.0", "2.00", "2.000"} {
		m[MustParse(s)]++
	}
	if len(m) != 1 {
		t.Errorf("len(m) = %v, want 1", len(m))
	}
	if got := m[FromInt(2)]; got != 4 {
		t.Errorf("m[2] = %v, want 4", got)
	}
}

func TestDecimal_Min(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"1.5", "2.50", "1.5"},
		{"2.50", "1.5", "1.5"},
		{"-1", "1", "-1"},
		{"2", "2.00", "2"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		e := MustParse(tt.e)
		got := d.Min(e)
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Min(%q) = %q, want %q", d, e, got, want)
		}
	}
}

func TestDecimal_Max(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"1.5", "2.50", "2.5"},
		{"2.50", "1.5", "2.5"},
		{"-1", "1", "1"},
		{"2", "2.00", "2"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		e := MustParse(tt.e)
		got := d.Max(e)
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Max(%q) = %q, want %q", d, e, got, want)
		}
	}
}

func TestDecimal_Clamp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, min, max, want string
		}{
			{"0", "-1", "1", "0"},
			{"-2", "-1", "1", "-1"},
			{"2", "-1", "1", "1"},
			{"1", "1", "1", "1"},
		}
		for _, tt := range tests {
			d := MustParse(tt.d)
			min := MustParse(tt.min)
			max := MustParse(tt.max)
			got, err := d.Clamp(min, max)
			if err != nil {
				t.Errorf("%q.Clamp(%q, %q) failed: %v", d, min, max, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Clamp(%q, %q) = %q, want %q", d, min, max, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d := MustParse("0")
		min := MustParse("1")
		max := MustParse("-1")
		_, err := d.Clamp(min, max)
		if err == nil {
			t.Errorf("%q.Clamp(%q, %q) did not fail", d, min, max)
		}
	})
}

func TestSum(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			ds   []string
			want string
		}{
			{nil, "0"},
			{[]string{}, "0"},
			{[]string{"1", "2", "3"}, "6"},
			{[]string{"0.1", "0.2", "0.70"}, "1"},
			{[]string{"1.5", "-1.50"}, "0"},
			{[]string{"-2.25"}, "-2.25"},
		}
		for _, tt := range tests {
			ds := MustParseSlice(tt.ds)
			got, err := Sum(ds...)
			if err != nil {
				t.Errorf("Sum(%v) failed: %v", ds, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("Sum(%v) = %q, want %q", ds, got, want)
			}
			assertNormalized(t, "Sum", got)
		}
		if got, _ := Sum(); got != Zero {
			t.Errorf("Sum() = %q, want %q", got, Zero)
		}
	})

	t.Run("error", func(t *testing.T) {
		ds := MustParseSlice([]string{"9999999999999999999", "1"})
		_, err := Sum(ds...)
		if err == nil {
			t.Errorf("Sum(%v) did not fail", ds)
		}
	})
}

func TestProd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			ds   []string
			want string
		}{
			{nil, "1"},
			{[]string{}, "1"},
			{[]string{"2", "3", "4"}, "24"},
			{[]string{"0.5", "0.5", "4"}, "1"},
			{[]string{"2.50", "-2"}, "-5"},
			{[]string{"7", "0"}, "0"},
		}
		for _, tt := range tests {
			ds := MustParseSlice(tt.ds)
			got, err := Prod(ds...)
			if err != nil {
				t.Errorf("Prod(%v) failed: %v", ds, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("Prod(%v) = %q, want %q", ds, got, want)
			}
			assertNormalized(t, "Prod", got)
		}
		if got, _ := Prod(); got != One {
			t.Errorf("Prod() = %q, want %q", got, One)
		}
	})

	t.Run("error", func(t *testing.T) {
		ds := MustParseSlice([]string{"9999999999", "9999999999"})
		_, err := Prod(ds...)
		if err == nil {
			t.Errorf("Prod(%v) did not fail", ds)
		}
	})
}
