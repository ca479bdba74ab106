package record

// Mutability state machine for frozen records.
//
// An instance starts in the initializing state, where the allocation
// constructor populates its slots through the privileged raw path. seal
// fires exactly once, immediately after construction succeeds, and is
// terminal: a sealed instance rejects every write and delete. A constructor
// error discards the instance, so an unsealed frozen record never escapes.

func (r *Record) seal() { r.sealed = true }

// Sealed reports whether the instance has completed frozen construction.
// Always false for records of non-frozen types.
func (r *Record) Sealed() bool { return r.sealed }
