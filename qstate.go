package qoracle

import (
	"math"
	"math/cmplx"
)

// NumQubits is fixed; the oracles below only make sense for two qubits.
const NumQubits = 2

// NumStates is the number of basis states, 2^NumQubits.
const NumStates = 1 << NumQubits

/*
StateVector is the full two-qubit quantum state, stored as a dense vector of
complex amplitudes. The index bit pattern is the basis label, with qubit 0
in the most significant bit.
*/
type StateVector struct {
	Amplitudes []complex128
}

/*
NewEqualSuperposition builds the state where every basis amplitude is
1/sqrt(N), so each of |00>, |01>, |10>, |11> is equally likely.
*/
func NewEqualSuperposition() *StateVector {
	amp := complex(1.0/math.Sqrt(NumStates), 0)

	amplitudes := make([]complex128, NumStates)
	for i := range amplitudes {
		amplitudes[i] = amp
	}

	return &StateVector{Amplitudes: amplitudes}
}

// Len returns the number of basis states held by the vector.
func (sv *StateVector) Len() int {
	return len(sv.Amplitudes)
}

// Probabilities returns |a|^2 for every basis state, in index order.
func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.Amplitudes))
	for i, amplitude := range sv.Amplitudes {
		prob := cmplx.Abs(amplitude)
		probs[i] = prob * prob // Square of the modulus
	}
	return probs
}

// Norm is the sum of all probabilities. It should stay at 1.
func (sv *StateVector) Norm() float64 {
	var total float64
	for _, p := range sv.Probabilities() {
		total += p
	}
	return total
}

// Clone returns a deep copy of the vector.
func (sv *StateVector) Clone() *StateVector {
	amplitudes := make([]complex128, len(sv.Amplitudes))
	copy(amplitudes, sv.Amplitudes)
	return &StateVector{Amplitudes: amplitudes}
}

// Qubits returns how many qubits the vector length implies.
func (sv *StateVector) Qubits() int {
	n := 0
	for size := len(sv.Amplitudes); size > 1; size >>= 1 {
		n++
	}
	return n
}
