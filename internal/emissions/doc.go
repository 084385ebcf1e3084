// Package emissions computes greenhouse-gas estimates for one field-season
// analysis.
//
// Each formula is independently invocable on a Calculator and returns
// either a Value (which may be not applicable, distinct from zero) or an
// ordered list of Items for the per-addition formulas. Missing reference
// records are faults, never zeros. Evaluate runs all formulas for one
// analysis; EvaluateAll runs many analyses with bounded concurrency.
//
// Results are in t CO2e except CropResidueBurning, which is in kg CO2e
// (area in ha, residue in kg/ha, emission factor in kg CO2e per kg). The
// engine never sums them.
package emissions
