package model

import (
	"path/filepath"
)

// Kind is the discriminator identifying which variant a catalog row describes.
type Kind string

const (
	// KindCar marks a passenger car.
	KindCar Kind = "car"

	// KindTruck marks a truck with a cargo body.
	KindTruck Kind = "truck"

	// KindSpecMachine marks special machinery (cranes, excavators, ...).
	KindSpecMachine Kind = "spec_machine"
)

// Kinds returns the closed set of vehicle kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindCar, KindTruck, KindSpecMachine}
}

// ParseKind maps discriminator text to a Kind.
// The second return value is false for any text outside the closed set.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindCar, KindTruck, KindSpecMachine:
		return Kind(s), true
	default:
		return "", false
	}
}

// Vehicle is any catalog entry: a Car, a Truck or a SpecMachine.
//
// The set of implementations is closed; the interface cannot be satisfied
// outside this package. Use a type switch to reach variant fields:
//
//	switch v := vehicle.(type) {
//	case model.Car:
//	    fmt.Println(v.PassengerSeats)
//	case model.Truck:
//	    fmt.Println(v.BodyVolume())
//	case model.SpecMachine:
//	    fmt.Println(v.Extra)
//	}
type Vehicle interface {
	// Kind returns the variant discriminator.
	Kind() Kind

	// Common returns the fields shared by every variant.
	Common() Base

	// PhotoFileExt returns the photo file extension, including the dot.
	PhotoFileExt() string

	// String renders the human-readable summary.
	String() string

	sealed()
}

// Base holds the fields every vehicle carries.
//
// The kind is fixed by the variant constructor and has no setter.
type Base struct {
	kind Kind

	// Brand is the manufacturer or model name.
	Brand string

	// PhotoFileName is the name of the vehicle photo file.
	PhotoFileName string

	// Carrying is the carrying capacity in tonnes.
	Carrying float64
}

// Kind returns the discriminator set at construction.
func (b Base) Kind() Kind {
	return b.kind
}

// Common returns the base record itself.
func (b Base) Common() Base {
	return b
}

// PhotoFileExt returns everything from the last dot of the photo file name,
// or an empty string when the name has no extension.
//
// Example:
//
//	Base{PhotoFileName: "photo1.jpg"}.PhotoFileExt() // ".jpg"
//	Base{PhotoFileName: "photo"}.PhotoFileExt()      // ""
func (b Base) PhotoFileExt() string {
	return filepath.Ext(b.PhotoFileName)
}

// String renders "{kind}: {brand} {carrying}".
func (b Base) String() string {
	return string(b.kind) + ": " + b.Brand + " " + FormatFloat(b.Carrying)
}

func (Base) sealed() {}

// Car is a passenger car.
type Car struct {
	Base

	// PassengerSeats is the number of passenger seats.
	PassengerSeats int
}

// NewCar creates a Car.
func NewCar(brand, photoFileName string, carrying float64, passengerSeats int) Car {
	return Car{
		Base:           Base{kind: KindCar, Brand: brand, PhotoFileName: photoFileName, Carrying: carrying},
		PassengerSeats: passengerSeats,
	}
}

// String renders "car: {brand} {carrying} {seats}".
func (c Car) String() string {
	return c.Base.String() + " " + formatInt(c.PassengerSeats)
}

// SpecMachine is a piece of special machinery.
type SpecMachine struct {
	Base

	// Extra is a free-text description of the special equipment.
	Extra string
}

// NewSpecMachine creates a SpecMachine.
func NewSpecMachine(brand, photoFileName string, carrying float64, extra string) SpecMachine {
	return SpecMachine{
		Base:  Base{kind: KindSpecMachine, Brand: brand, PhotoFileName: photoFileName, Carrying: carrying},
		Extra: extra,
	}
}

// String renders "spec_machine: {brand} {carrying} {extra}".
func (s SpecMachine) String() string {
	return s.Base.String() + " " + s.Extra
}
