package model

import (
	"strings"
)

// bodySpecSeparator splits a body spec into width, height and length.
const bodySpecSeparator = "x"

// Truck is a truck with a cargo body.
//
// Body dimensions are in meters and default to 0.0 when the catalog row
// leaves the body spec empty.
type Truck struct {
	Base

	// BodyWidth is the cargo body width in meters.
	BodyWidth float64

	// BodyHeight is the cargo body height in meters.
	BodyHeight float64

	// BodyLength is the cargo body length in meters.
	BodyLength float64
}

// NewTruck creates a Truck from a "<width>x<height>x<length>" body spec.
//
// An empty or whitespace-only spec leaves all dimensions at 0.0. Any other
// spec must split on "x" into exactly three numbers, otherwise a
// *FormatError carrying the raw spec is returned.
//
// Example:
//
//	truck, err := NewTruck("Volvo", "t.png", 12.0, "2x3x4")
//	// truck.BodyVolume() == 24.0
//
//	_, err = NewTruck("Volvo", "t.png", 12.0, "2.5x3.0")
//	// errors.Is(err, ErrBodySpec) == true
func NewTruck(brand, photoFileName string, carrying float64, bodySpec string) (Truck, error) {
	truck := Truck{
		Base: Base{kind: KindTruck, Brand: brand, PhotoFileName: photoFileName, Carrying: carrying},
	}

	if strings.TrimSpace(bodySpec) == "" {
		return truck, nil
	}

	parts := strings.SplitN(bodySpec, bodySpecSeparator, 3)
	if len(parts) != 3 {
		return Truck{}, &FormatError{Field: "body", Value: bodySpec, Err: ErrBodySpec}
	}

	dims := make([]float64, len(parts))
	for i, part := range parts {
		v, err := ParseFloat(part)
		if err != nil {
			return Truck{}, &FormatError{Field: "body", Value: bodySpec, Err: ErrBodySpec}
		}
		dims[i] = v
	}

	truck.BodyWidth, truck.BodyHeight, truck.BodyLength = dims[0], dims[1], dims[2]
	return truck, nil
}

// BodyVolume returns the cargo body volume in cubic meters.
func (t Truck) BodyVolume() float64 {
	return t.BodyWidth * t.BodyHeight * t.BodyLength
}

// HasBody reports whether any body dimension was supplied.
func (t Truck) HasBody() bool {
	return t.BodyWidth != 0 || t.BodyHeight != 0 || t.BodyLength != 0
}

// BodySpec renders the dimensions back as "{width}x{height}x{length}".
func (t Truck) BodySpec() string {
	return FormatFloat(t.BodyWidth) + bodySpecSeparator +
		FormatFloat(t.BodyHeight) + bodySpecSeparator +
		FormatFloat(t.BodyLength)
}

// String renders "truck: {brand} {carrying} {width}x{height}x{length}".
func (t Truck) String() string {
	return t.Base.String() + " " + t.BodySpec()
}
