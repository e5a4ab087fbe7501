// Package outcome provides tri-state result handling for reactive Go
// applications.
//
// The central type is Result[T], a closed sum over three variants:
// success with a payload, domain failure, and network failure. A
// Handler[T] turns a Result into exactly one presentation side effect
// (a transient notice or a blocking retry dialog) through a small
// Presenter capability interface, and the Observe/Bind adapters drive
// the Handler from an AsyncValue[T] reactive container.
package outcome
