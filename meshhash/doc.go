// Package meshhash builds the canonical, direction-independent edge key
// used to pair up triangle edges, and the fixed-size open-chained hash
// table that stores them during a single matching pass.
//
// A meshhash.Table is scoped to one pass: it is built, fed every
// candidate edge via Insert, and torn down with Free. It never outlives
// the pass and is never resized — M is a fixed prime bucket count, same
// as the table it is modeled on.
package meshhash
