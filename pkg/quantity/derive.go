package quantity

// MultiplyWith multiplies the magnitudes of q and factor and passes the
// product through makeResult. It lets callers wire a named relation the
// package does not know about:
//
//	v, err := quantity.MultiplyWith(length, freq, quantity.FromSI[quantity.VelocityDim])
//
// A nil q, factor or makeResult yields an error matching ErrInvalidArgument.
func MultiplyWith[R any](q, factor Magnituder, makeResult func(float64) R) (R, error) {
	if err := checkFactoryArgs("MultiplyWith", q, factor, makeResult == nil); err != nil {
		var zero R
		return zero, err
	}
	return makeResult(q.Float64() * factor.Float64()), nil
}

// DivideWith divides the magnitude of q by that of divisor and passes the
// quotient through makeResult. Arguments are checked as in MultiplyWith.
func DivideWith[R any](q, divisor Magnituder, makeResult func(float64) R) (R, error) {
	if err := checkFactoryArgs("DivideWith", q, divisor, makeResult == nil); err != nil {
		var zero R
		return zero, err
	}
	return makeResult(q.Float64() / divisor.Float64()), nil
}

func checkFactoryArgs(op string, q, factor Magnituder, nilFactory bool) error {
	switch {
	case q == nil:
		return invalidArgument(op, "q", "quantity is nil")
	case factor == nil:
		return invalidArgument(op, "factor", "factor is nil")
	case nilFactory:
		return invalidArgument(op, "makeResult", "result constructor is nil")
	}
	return nil
}

func product[R, A, B Dimension](a Quantity[A], b Quantity[B]) Quantity[R] {
	return Quantity[R]{si: a.si * b.si}
}

func quotient[R, A, B Dimension](a Quantity[A], b Quantity[B]) Quantity[R] {
	return Quantity[R]{si: a.si / b.si}
}

func retag[R, A Dimension](a Quantity[A], f func(float64) float64) Quantity[R] {
	return Quantity[R]{si: f(a.si)}
}
