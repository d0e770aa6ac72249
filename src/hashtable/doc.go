// Package hashtable implements a string-keyed hash table with separate
// chaining.
//
// The table is created once with a requested capacity that is squared to
// obtain the number of bucket slots; it never grows afterwards. Keys are
// hashed by summing the squares of their bytes, and each bucket holds a
// singly linked chain of entries in insertion order.
//
// Insert never checks for an existing key: inserting a key twice appends a
// second entry, and Lookup keeps returning the value of the first one.
// There is no deletion.
//
// A HashTable is not safe for concurrent use. Callers that share a table
// between goroutines must guard it themselves, for example with a
// sync.RWMutex around the whole table.
package hashtable
