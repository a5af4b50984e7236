package fsrs

import "math"

// branches holds one candidate card per rating, indexed by Rating.index.
type branches [len(Ratings)]Card

// newBranches copies c into all four branches.
func newBranches(c Card) branches {
	var b branches
	for i := range b {
		b[i] = c
	}
	return b
}

// update applies fn to every branch with the branch's rating.
func (b *branches) update(fn func(r Rating, c *Card)) {
	for i, r := range Ratings {
		fn(r, &b[i])
	}
}

func (b *branches) get(r Rating) Card {
	return b[r.index()]
}

// orderRecallIntervals forces hard < good < easy, bumping ties by a day.
func orderRecallIntervals(hard, good, easy float64) (h, g, e int64) {
	hard = math.Min(hard, good)
	good = math.Max(good, hard+1)
	easy = math.Max(easy, good+1)
	return int64(hard), int64(good), int64(easy)
}

// orderAllIntervals forces again < hard < good < easy over raw intervals
// indexed by Rating.index. Again is never longer than Hard.
func orderAllIntervals(raw [len(Ratings)]float64) [len(Ratings)]int64 {
	again := math.Min(raw[Again.index()], raw[Hard.index()])
	hard := math.Max(raw[Hard.index()], again+1)
	good := math.Max(raw[Good.index()], hard+1)
	easy := math.Max(raw[Easy.index()], good+1)
	return [len(Ratings)]int64{int64(again), int64(hard), int64(good), int64(easy)}
}
