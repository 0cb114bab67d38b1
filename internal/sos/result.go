package sos

// Result is the outcome of a strength-of-schedule computation. Callers get
// the fallback signal in the type itself instead of an error they could
// swallow: Fallback=true means Strengths came from the median baseline and
// Reason says why.
type Result struct {
	Strengths map[string]float64
	Fallback  bool
	Reason    string
}
