package fare

import "sort"

// Compare orders offers for ranking: direct before connecting, fewer
// transfers before more, then cheaper before costlier. It returns a negative
// number when a ranks ahead of b, zero when they tie.
func Compare(a, b Offer) int {
	if a.HasTransfer != b.HasTransfer {
		if a.HasTransfer {
			return 1
		}
		return -1
	}
	if a.HasTransfer && a.TransferCount != b.TransferCount {
		if a.TransferCount < b.TransferCount {
			return -1
		}
		return 1
	}
	switch {
	case a.Price < b.Price:
		return -1
	case a.Price > b.Price:
		return 1
	}
	return 0
}

// Rank returns a sorted copy of offers. Ties keep their input order and the
// input slice is left untouched. A cheaper connecting offer never outranks a
// direct one.
func Rank(offers []Offer) []Offer {
	ranked := make([]Offer, len(offers))
	copy(ranked, offers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j]) < 0
	})
	return ranked
}

// PickBest returns the top-ranked offer. ok is false when offers is empty.
func PickBest(offers []Offer) (best Offer, ok bool) {
	ranked := Rank(offers)
	if len(ranked) == 0 {
		return Offer{}, false
	}
	return ranked[0], true
}

// Result is a ranked list of offers with the recommended pick.
type Result struct {
	Offers []Offer `json:"offers"`
	Best   *Offer  `json:"best,omitempty"`
}

// NewResult ranks offers and records the head as Best.
func NewResult(offers []Offer) Result {
	ranked := Rank(offers)
	res := Result{Offers: ranked}
	if len(ranked) > 0 {
		best := ranked[0]
		res.Best = &best
	}
	return res
}
