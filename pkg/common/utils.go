package common

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func ContainsMove(ml []Move, move Move) bool {
	for _, m := range ml {
		if m == move {
			return true
		}
	}
	return false
}
