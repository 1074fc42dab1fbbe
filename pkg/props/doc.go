// Package props holds system properties grouped by partition.
//
// Both the partitions and the keys inside each partition keep their
// insertion order, because generated make fragments list them in exactly
// that order and must stay byte-stable between runs.
package props
