// Package workers runs the units of work of a backup.
//
// Pool is the bounded fan-out primitive used inside a single backup pass:
// every solution, file and iteration is a Unit spawned into a Pool and
// joined by its parent.
package workers
