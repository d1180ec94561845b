package qoracle

// Oracle is a phase oracle that mutates a state vector in place.
type Oracle func(*StateVector)

// ApplyConstantOracle is the phase oracle for f(x) = 1 on every input,
// which flips the sign of every amplitude.
func ApplyConstantOracle(sv *StateVector) {
	for i := range sv.Amplitudes {
		sv.Amplitudes[i] = -sv.Amplitudes[i]
	}
}

/*
ApplyBalancedOracle is the phase oracle for f(x0, x1) = x0 XOR x1. An
amplitude is negated when its two index bits differ, so |01> and |10> flip
while |00> and |11> stay put. Only the two low bits of each index are read.
*/
func ApplyBalancedOracle(sv *StateVector) {
	for x := range sv.Amplitudes {
		x0 := (x >> 1) & 1
		x1 := x & 1

		if x0^x1 == 1 {
			sv.Amplitudes[x] = -sv.Amplitudes[x]
		}
	}
}
