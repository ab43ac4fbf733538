package model

import (
	"errors"
	"math"
	"testing"
)

func TestCar_String(t *testing.T) {
	car := NewCar("Toyota", "photo1.jpg", 3.5, 5)

	if got, want := car.String(), "car: Toyota 3.5 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if car.Kind() != KindCar {
		t.Errorf("Kind() = %q, want %q", car.Kind(), KindCar)
	}
	if car.PassengerSeats != 5 {
		t.Errorf("PassengerSeats = %d, want 5", car.PassengerSeats)
	}
}

func TestSpecMachine_String(t *testing.T) {
	m := NewSpecMachine("Komatsu", "pc200.png", 20, "excavator bucket")

	if got, want := m.String(), "spec_machine: Komatsu 20.0 excavator bucket"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if m.Kind() != KindSpecMachine {
		t.Errorf("Kind() = %q, want %q", m.Kind(), KindSpecMachine)
	}
}

func TestBase_String(t *testing.T) {
	truck, err := NewTruck("MAN", "man.jpg", 8, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := truck.Common().String(), "truck: MAN 8.0"; got != want {
		t.Errorf("Common().String() = %q, want %q", got, want)
	}
}

func TestNewTruck(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		wantErr    bool
		wantVolume float64
		wantString string
	}{
		{name: "integers", spec: "2x3x4", wantVolume: 24, wantString: "truck: Volvo 12.0 2.0x3.0x4.0"},
		{name: "decimals", spec: "2.5x3.0x8.0", wantVolume: 60, wantString: "truck: Volvo 12.0 2.5x3.0x8.0"},
		{name: "padded parts", spec: " 2 x 3 x 4 ", wantVolume: 24, wantString: "truck: Volvo 12.0 2.0x3.0x4.0"},
		{name: "empty", spec: "", wantVolume: 0, wantString: "truck: Volvo 12.0 0.0x0.0x0.0"},
		{name: "whitespace", spec: "   ", wantVolume: 0, wantString: "truck: Volvo 12.0 0.0x0.0x0.0"},
		{name: "two parts", spec: "2.5x3.0", wantErr: true},
		{name: "non numeric", spec: "axbxc", wantErr: true},
		{name: "four parts", spec: "1x2x3x4", wantErr: true},
		{name: "missing part", spec: "1xx3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truck, err := NewTruck("Volvo", "t.png", 12.0, tt.spec)

			if tt.wantErr {
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("expected *FormatError, got %v", err)
				}
				if fe.Value != tt.spec {
					t.Errorf("FormatError.Value = %q, want %q", fe.Value, tt.spec)
				}
				if !errors.Is(err, ErrBodySpec) {
					t.Errorf("expected errors.Is(err, ErrBodySpec)")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := truck.BodyVolume(); got != tt.wantVolume {
				t.Errorf("BodyVolume() = %v, want %v", got, tt.wantVolume)
			}
			if got := truck.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if truck.Kind() != KindTruck {
				t.Errorf("Kind() = %q, want %q", truck.Kind(), KindTruck)
			}
		})
	}
}

func TestTruck_HasBody(t *testing.T) {
	empty, _ := NewTruck("A", "a.jpg", 1, "")
	if empty.HasBody() {
		t.Error("HasBody() should be false for an empty spec")
	}

	full, _ := NewTruck("A", "a.jpg", 1, "1x1x1")
	if !full.HasBody() {
		t.Error("HasBody() should be true for a full spec")
	}
}

func TestPhotoFileExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo1.jpg", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"photo", ""},
		{"", ""},
		{"trailing.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := NewCar("Lada", tt.name, 1, 4)
			if got := car.PhotoFileExt(); got != tt.want {
				t.Errorf("PhotoFileExt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{3.5, "3.5"},
		{12, "12.0"},
		{0, "0.0"},
		{0.1, "0.1"},
		{-2.25, "-2.25"},
		{1234567, "1234567.0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatFloat(tt.in); got != tt.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumbers(t *testing.T) {
	if v, err := ParseFloat(" 3.5 "); err != nil || v != 3.5 {
		t.Errorf("ParseFloat(\" 3.5 \") = %v, %v", v, err)
	}
	if _, err := ParseFloat("abc"); !errors.Is(err, ErrNumber) {
		t.Errorf("ParseFloat(\"abc\") error = %v, want ErrNumber", err)
	}
	if v, err := ParseFloat("1e400"); err != nil || !math.IsInf(v, 1) {
		t.Errorf("ParseFloat(\"1e400\") = %v, %v, want +Inf", v, err)
	}
	if v, err := ParseFloat("-1e400"); err != nil || !math.IsInf(v, -1) {
		t.Errorf("ParseFloat(\"-1e400\") = %v, %v, want -Inf", v, err)
	}
	if v, err := ParseFloat("1e-400"); err != nil || v != 0 {
		t.Errorf("ParseFloat(\"1e-400\") = %v, %v, want 0", v, err)
	}
	if v, err := ParseInt("5"); err != nil || v != 5 {
		t.Errorf("ParseInt(\"5\") = %v, %v", v, err)
	}
	if _, err := ParseInt("5.0"); !errors.Is(err, ErrNumber) {
		t.Errorf("ParseInt(\"5.0\") error = %v, want ErrNumber", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(string(k))
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, ok)
		}
	}

	if _, ok := ParseKind("motorbike"); ok {
		t.Error("ParseKind(\"motorbike\") should fail")
	}
	if _, ok := ParseKind("Car"); ok {
		t.Error("ParseKind is case sensitive")
	}
}

func TestVehicle_ValueEquality(t *testing.T) {
	var a, b Vehicle = NewCar("Toyota", "p.jpg", 3.5, 5), NewCar("Toyota", "p.jpg", 3.5, 5)
	if a != b {
		t.Error("identical cars should compare equal")
	}
}
