// Package model defines the vehicle records held in a catalog.
//
// # Variants
//
// Every vehicle shares a Base (brand, photo file name, carrying capacity and
// kind) and is one of three variants:
//
//	car := model.NewCar("Toyota", "photo1.jpg", 3.5, 5)
//	fmt.Println(car) // car: Toyota 3.5 5
//
//	truck, err := model.NewTruck("Volvo", "t.png", 12.0, "2x3x4")
//	fmt.Println(truck)              // truck: Volvo 12.0 2.0x3.0x4.0
//	fmt.Println(truck.BodyVolume()) // 24
//
//	machine := model.NewSpecMachine("Liebherr", "crane.jpg", 40, "tower crane")
//	fmt.Println(machine) // spec_machine: Liebherr 40.0 tower crane
//
// Vehicles are values: copies are independent and two catalogs loaded from
// the same file compare equal.
//
// # Errors
//
// NewTruck returns a *FormatError when the body spec is malformed. ParseFloat
// and ParseInt return *FormatError for bad numeric text. Use errors.Is with
// ErrBodySpec or ErrNumber to tell them apart.
package model
