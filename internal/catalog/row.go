package catalog

import (
	"errors"
	"fmt"

	"github.com/handiism/vehicle-catalog/internal/model"
)

// Column positions of a catalog row.
const (
	colKind = iota
	colBrand
	colSeats
	colPhoto
	colBody
	colCarrying
	colExtra

	// RowFields is the number of fields a data row must have.
	RowFields
)

// SkipReason explains why a row was excluded from the catalog.
type SkipReason int

const (
	// SkipNone means the row produced a vehicle.
	SkipNone SkipReason = iota

	// SkipFieldCount means the row did not have exactly RowFields fields.
	SkipFieldCount

	// SkipUnknownKind means the discriminator is not car, truck or spec_machine.
	SkipUnknownKind

	// SkipBadNumber means the carrying capacity or seat count is not a number.
	SkipBadNumber

	// SkipBadBodySpec means a truck body spec is not "<width>x<height>x<length>".
	SkipBadBodySpec

	// SkipMalformedRow means the CSV reader could not split the row.
	SkipMalformedRow
)

// String returns a short description of the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "ok"
	case SkipFieldCount:
		return "wrong field count"
	case SkipUnknownKind:
		return "unknown kind"
	case SkipBadNumber:
		return "bad number"
	case SkipBadBodySpec:
		return "bad body spec"
	case SkipMalformedRow:
		return "malformed row"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// RowResult is the outcome of parsing one catalog row: either a vehicle or
// a reason to skip the row.
type RowResult struct {
	// Vehicle is set when Skip is SkipNone.
	Vehicle model.Vehicle

	// Skip tells why the row was excluded.
	Skip SkipReason

	// Err is the underlying parse error, if any.
	Err error
}

// OK reports whether the row produced a vehicle.
func (r RowResult) OK() bool {
	return r.Skip == SkipNone
}

func skip(reason SkipReason, err error) RowResult {
	return RowResult{Skip: reason, Err: err}
}

// ParseRow turns one raw catalog row into a vehicle.
//
// Columns are: kind, brand, seats, photo, body spec, carrying, extra.
// Seats are only read for cars, the body spec only for trucks and extra only
// for special machinery. ParseRow never panics and never returns an error
// that should abort a load; every failure is reported as a skip.
//
// Example:
//
//	res := ParseRow([]string{"car", "Toyota", "5", "photo1.jpg", "", "3.5", ""})
//	fmt.Println(res.Vehicle) // car: Toyota 3.5 5
func ParseRow(record []string) RowResult {
	if len(record) != RowFields {
		return skip(SkipFieldCount, fmt.Errorf("got %d fields, want %d", len(record), RowFields))
	}

	kind, ok := model.ParseKind(record[colKind])
	if !ok {
		return skip(SkipUnknownKind, fmt.Errorf("unknown kind %q", record[colKind]))
	}

	brand, photo := record[colBrand], record[colPhoto]

	carrying, err := model.ParseFloat(record[colCarrying])
	if err != nil {
		return skip(SkipBadNumber, fmt.Errorf("carrying: %w", err))
	}

	switch kind {
	case model.KindCar:
		seats, err := model.ParseInt(record[colSeats])
		if err != nil {
			return skip(SkipBadNumber, fmt.Errorf("passenger seats: %w", err))
		}
		return RowResult{Vehicle: model.NewCar(brand, photo, carrying, seats)}

	case model.KindTruck:
		truck, err := model.NewTruck(brand, photo, carrying, record[colBody])
		if err != nil {
			if errors.Is(err, model.ErrBodySpec) {
				return skip(SkipBadBodySpec, err)
			}
			return skip(SkipBadNumber, err)
		}
		return RowResult{Vehicle: truck}

	case model.KindSpecMachine:
		return RowResult{Vehicle: model.NewSpecMachine(brand, photo, carrying, record[colExtra])}
	}

	return skip(SkipUnknownKind, fmt.Errorf("unhandled kind %q", kind))
}
