package tsig

// StreamVerifier authenticates a sequence of responses chained under a
// single query's TSIG signature (RFC 8945 §5.3.1). It is expressed as a
// state-owning struct rather than a closure so that its state (last
// accepted MAC and time) is visible to a debugger and can be inspected
// between calls; it must not be called concurrently with itself.
type StreamVerifier struct {
	signer   *Signer
	lastMAC  []byte
	lastTime uint64
	now      func() uint64
}

// NewStreamVerifier seeds a verifier from the query's own MAC, as produced
// by Signer.SignRequest. now supplies the caller's notion of current time;
// the library never samples the clock itself.
func NewStreamVerifier(signer *Signer, queryMAC []byte, now func() uint64) *StreamVerifier {
	return &StreamVerifier{signer: signer, lastMAC: queryMAC, now: now}
}

// VerifyNext authenticates the next response in the stream against tsigRR,
// requiring time_signed to be monotonically non-decreasing relative to the
// last accepted response and the current time to fall within the returned
// acceptance window. On acceptance it advances the verifier's state and
// returns the verified MAC; on rejection the stream is considered
// poisoned and VerifyNext should not be called again.
func (v *StreamVerifier) VerifyNext(encodedMessage []byte, tsigRR *RR) ([]byte, error) {
	result, err := v.signer.VerifyMessage(encodedMessage, tsigRR, v.lastMAC)
	if err != nil {
		return nil, err
	}
	if result.TimeSigned < v.lastTime {
		return nil, ErrOutdatedResponse
	}
	now := v.now()
	if now < result.RangeStart || now > result.RangeEnd {
		return nil, ErrOutdatedResponse
	}
	v.lastMAC = result.MAC
	v.lastTime = result.TimeSigned
	return result.MAC, nil
}
