// Package leaf implements the sequential small-input fallback every
// recursive driver in psort bottoms out to: insertion sort, stable by
// construction, used below each driver's leaf-size threshold.
//
// Kept deliberately tiny and shared by mergesort and radixsort rather
// than duplicated in each.
package leaf
