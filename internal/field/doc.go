// Package field evaluates the approximate poloidal-plane magnetic field
// of a snowflake divertor configuration.
//
// The field is a toroidal 1/R term plus a superposition of localized
// null-point perturbations with Gaussian falloff:
//
//	f := field.NewSnowflake(5.3, 6.2)
//	s := f.At(field.Point{R: 8.0, Z: -2.5})
//	fmt.Println(s.Total)
//
// Evaluation is pure arithmetic with no error conditions. Callers must
// keep R > 0; the 1/R term is not guarded.
package field
