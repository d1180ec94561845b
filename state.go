package qoracle

/*
Snapshot is a printed listing of a state vector, kept so the same listing
can be exported again later (for example as a chart).
*/
type Snapshot struct {
	Title      string
	Labels     []string
	Amplitudes []complex128
}

// NewSnapshot copies the amplitudes, so later oracle calls don't leak in.
func NewSnapshot(title string, labels []string, sv *StateVector) Snapshot {
	amplitudes := make([]complex128, len(sv.Amplitudes))
	copy(amplitudes, sv.Amplitudes)

	return Snapshot{
		Title:      title,
		Labels:     labels,
		Amplitudes: amplitudes,
	}
}
