// Package codegen renders a compiled layout as source for other toolchains.
//
// Rust and C render the field table as a constant literal list that the
// matching runtime walks at encode and decode time. CRuntime returns that C
// runtime. WIT and WITType describe the record a decoded line unpacks into,
// and CStruct mirrors the same record as a C struct using the Canonical ABI
// layout.
//
//	l, _ := compiler.Compile("ble test", "", specs)
//	fmt.Println(codegen.Rust(l))
//
// Names are sanitised per target: spaces become underscores in Rust and C,
// and WIT names are kebab-case.
package codegen
