// Package memprobe reports total and used physical memory in megabytes,
// the signal the adaptive drivers in the parent psort package use to
// decide whether an auxiliary buffer the size of the input can be safely
// allocated.
package memprobe
