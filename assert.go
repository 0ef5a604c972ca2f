package konzept

// --- Compile-time assertions -----------------------------------------------

// Assertion helpers: each of these fails to compile unless the instantiating
// type satisfies the named capability, and compiles to nothing otherwise.
// Use them at package level to declare an iterator's capability next to its
// definition:
//
//    var _ = konzept.AssertForward[*Iterator[int], int]()
//
// The value-type parameter cannot be inferred, so both parameters have to be
// spelled out.

type nothing *struct{}

// AssertIterator will fail to compile if I lacks the basic iterator shape.
func AssertIterator[I Iterator]() nothing { return nil }

// AssertInput will fail to compile if I is no input iterator over T.
func AssertInput[I InputIterator[I, T], T any]() nothing { return nil }

// AssertForward will fail to compile if I is no forward iterator over T.
func AssertForward[I ForwardIterator[I, T], T any]() nothing { return nil }

// AssertBidirectional will fail to compile if I is no bidirectional iterator
// over T.
func AssertBidirectional[I BidirectionalIterator[I, T], T any]() nothing { return nil }

// AssertRandomAccess will fail to compile if I is no random-access iterator
// over T.
func AssertRandomAccess[I RandomAccessIterator[I, T], T any]() nothing { return nil }

// AssertRestartable will fail to compile if I is not default-constructible,
// i.e. does not offer Begin.
func AssertRestartable[I Restartable]() nothing { return nil }

// AssertEqualable will fail to compile if I cannot be compared to other
// instances of itself via Equal.
func AssertEqualable[I Equalable[I]]() nothing { return nil }

// AssertComparable will fail to compile if T does not support the built-in ==
// operator. This is the flavour of equality-comparability for plain value
// types, as opposed to the method-based Equalable.
func AssertComparable[T comparable]() nothing { return nil }
