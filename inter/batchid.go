package inter

// BatchID is a sequential batch identifier allocated by the Batch Registry.
// Ids start at 0, are unique and never reused.
//
// The id is the only datum the three engines share. The deviation and
// incentive engines accept it as an opaque foreign value and never check its
// existence against the registry: a weak reference by value.
type BatchID uint64
