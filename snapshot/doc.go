// Package snapshot serializes the complete state of a priority queue
// (elements in storage order plus the ordering direction) to a
// self-describing binary envelope.
//
// The envelope records the payload codec by name and carries a CRC32-C
// checksum, so a snapshot written with one configuration is validated and
// decoded correctly regardless of the reader's defaults. Payloads may be
// stored uncompressed or block-compressed with LZ4 or ZSTD.
//
// Restoring a snapshot rebuilds the heap and its position index in O(n);
// element priorities, owners and insertion timestamps round-trip exactly.
package snapshot
