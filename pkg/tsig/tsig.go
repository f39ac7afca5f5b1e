// Package tsig implements transaction signatures over DNS messages (RFC
// 8945): a signer that authenticates requests and responses with an HMAC
// shared secret, and a response-context state machine that selects between
// a signed reply and the two unsigned error replies a server must emit when
// it cannot trust the request signature.
package tsig

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
)

// Algorithm names the wire algorithm FQDNs TSIG supports. Truncated MAC
// variants are intentionally absent; RFC 8945 deprecated them and this
// module refuses to emit or accept one.
type Algorithm string

const (
	HMACSHA1   Algorithm = "hmac-sha1."
	HMACSHA224 Algorithm = "hmac-sha224."
	HMACSHA256 Algorithm = "hmac-sha256."
	HMACSHA384 Algorithm = "hmac-sha384."
	HMACSHA512 Algorithm = "hmac-sha512."
)

// Wire TSIG error codes (RFC 8945 §5.2). Any other rcode value is carried
// through unchanged.
const (
	ErrorNone    uint16 = 0
	ErrorBadSig  uint16 = 16
	ErrorBadKey  uint16 = 17
	ErrorBadTime uint16 = 18
)

var ErrUnsupportedAlgorithm = errors.New("tsig: unsupported algorithm")
var ErrWrongKey = errors.New("tsig: wrong key name or algorithm")
var ErrTruncatedMAC = errors.New("tsig: MAC shorter than algorithm output length")
var ErrMACMismatch = errors.New("tsig: MAC verification failed")
var ErrOutdatedResponse = errors.New("tsig: outdated response: time signed precedes the previous response or current time is outside the fudge window")
var ErrMACTooLong = errors.New("tsig: previous MAC exceeds 65535 bytes")

func newHash(alg Algorithm) (func() hash.Hash, error) {
	switch alg {
	case HMACSHA1:
		return sha1.New, nil
	case HMACSHA224:
		return sha256.New224, nil
	case HMACSHA256:
		return sha256.New, nil
	case HMACSHA384:
		return sha512.New384, nil
	case HMACSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

// RR is a constructed TSIG resource record: the pseudo-record a signer
// attaches to a message's additional section. Unlike the presentation-form
// records in package dnsrecords, a TSIG RR is never parsed from zone-file
// text; it exists only as the output (and input) of the signing and
// verification operations below.
type RR struct {
	KeyName    string
	Algorithm  Algorithm
	TimeSigned uint64
	Fudge      uint16
	MAC        []byte
	OriginalID uint16
	Error      uint16
	OtherData  []byte
}

// Signer holds a shared secret and the parameters needed to authenticate
// messages under it. It is immutable after construction and safe to share
// across goroutines; Close zeros the key bytes so the secret does not
// linger in memory past the signer's useful life.
type Signer struct {
	key       []byte
	algorithm Algorithm
	name      string
	fudge     uint16
	hashNew   func() hash.Hash
}

// NewSigner validates the algorithm and canonicalises signerName to FQDN
// form before constructing a Signer.
func NewSigner(key []byte, algorithm Algorithm, signerName string, fudge uint16) (*Signer, error) {
	hashNew, err := newHash(algorithm)
	if err != nil {
		return nil, err
	}
	name, err := dnsname.Canonicalize(signerName)
	if err != nil {
		return nil, fmt.Errorf("tsig: invalid signer name: %v", err)
	}
	owned := make([]byte, len(key))
	copy(owned, key)
	return &Signer{key: owned, algorithm: algorithm, name: name, fudge: fudge, hashNew: hashNew}, nil
}

// Close zeros the signer's key bytes. The signer must not be used
// afterwards.
func (s *Signer) Close() {
	for i := range s.key {
		s.key[i] = 0
	}
}

func (s *Signer) Algorithm() Algorithm { return s.algorithm }
func (s *Signer) KeyName() string      { return s.name }
func (s *Signer) Fudge() uint16        { return s.fudge }

// sign computes the HMAC of tbs under the signer's key.
func (s *Signer) sign(tbs []byte) []byte {
	h := hmac.New(s.hashNew, s.key)
	h.Write(tbs)
	return h.Sum(nil)
}

// verify constant-time-compares tag against the HMAC of tbv.
func (s *Signer) verify(tbv, tag []byte) bool {
	return hmac.Equal(s.sign(tbv), tag)
}

// emitTsigForMAC renders the canonical TSIG variables block that is hashed
// as one of the components of a MAC (RFC 8945 §4.2): key name, class ANY (255), TTL
// 0, algorithm name, time_signed as a 48-bit big-endian quantity split into
// a u16 high part and u32 low part, fudge, error, other-data length and
// bytes.
func emitTsigForMAC(rr *RR) ([]byte, error) {
	nameWire, err := dnsname.EncodeWire(rr.KeyName)
	if err != nil {
		return nil, fmt.Errorf("tsig: %v", err)
	}
	algWire, err := dnsname.EncodeWire(string(rr.Algorithm))
	if err != nil {
		return nil, fmt.Errorf("tsig: %v", err)
	}

	buf := make([]byte, 0, len(nameWire)+2+4+len(algWire)+2+4+2+2+2+len(rr.OtherData))
	buf = append(buf, nameWire...)
	buf = appendU16(buf, 255) // class ANY
	buf = appendU32(buf, 0)   // TTL
	buf = append(buf, algWire...)
	buf = appendU16(buf, uint16(rr.TimeSigned>>32))
	buf = appendU32(buf, uint32(rr.TimeSigned&0xFFFFFFFF))
	buf = appendU16(buf, rr.Fudge)
	buf = appendU16(buf, rr.Error)
	buf = appendU16(buf, uint16(len(rr.OtherData)))
	buf = append(buf, rr.OtherData...)
	return buf, nil
}

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// EncodeResponseTBS builds the message-to-be-signed buffer for a response
// that chains onto a previous MAC: u16(len(previousMAC)), previousMAC, the
// already-encoded response bytes, then the canonical TSIG variables for
// stub (without its MAC field, which this function never reads).
func EncodeResponseTBS(previousMAC, encodedResponse []byte, stub *RR) ([]byte, error) {
	if len(previousMAC) > 0xFFFF {
		return nil, ErrMACTooLong
	}
	variables, err := emitTsigForMAC(stub)
	if err != nil {
		return nil, err
	}
	tbs := make([]byte, 0, 2+len(previousMAC)+len(encodedResponse)+len(variables))
	tbs = appendU16(tbs, uint16(len(previousMAC)))
	tbs = append(tbs, previousMAC...)
	tbs = append(tbs, encodedResponse...)
	tbs = append(tbs, variables...)
	return tbs, nil
}

// MessageSignature is the outcome of a signing operation: the TSIG RR to
// attach to the outgoing message plus the raw MAC, returned separately
// because chained verification needs the MAC on its own.
type MessageSignature struct {
	RR  RR
	MAC []byte
}

// SignRequest builds a stub TSIG RR for messageID stamped with
// currentTime, computes the message-to-be-signed buffer over
// encodedMessage, signs it, and returns the completed signature together
// with a StreamVerifier seeded to authenticate the response(s). now
// supplies the verifier's notion of current time for each subsequent
// VerifyNext call; the library never samples the clock itself.
func (s *Signer) SignRequest(encodedMessage []byte, messageID uint16, currentTime uint64, now func() uint64) (*MessageSignature, *StreamVerifier, error) {
	stub := RR{
		KeyName:    s.name,
		Algorithm:  s.algorithm,
		TimeSigned: currentTime,
		Fudge:      s.fudge,
		OriginalID: messageID,
	}
	tbs, err := EncodeResponseTBS(nil, encodedMessage, &stub)
	if err != nil {
		return nil, nil, err
	}
	mac := s.sign(tbs)
	stub.MAC = mac

	sig := &MessageSignature{RR: stub, MAC: mac}
	verifier := NewStreamVerifier(s, mac, now)
	return sig, verifier, nil
}

// VerifyResult carries the outcome of VerifyMessage: the MAC the
// message carried (to seed the next chained verification), the raw
// time_signed field, and the inclusive acceptance window derived from it.
// The caller, not this package, compares the current time against
// RangeStart/RangeEnd.
type VerifyResult struct {
	MAC        []byte
	TimeSigned uint64
	RangeStart uint64
	RangeEnd   uint64
}

// VerifyMessage authenticates msgBytes against the attached TSIG RR,
// chaining onto previousMAC when non-nil (a response in a stream) or
// treating this as the first message in the exchange when nil.
func (s *Signer) VerifyMessage(msgBytes []byte, tsigRR *RR, previousMAC []byte) (*VerifyResult, error) {
	if !dnsname.Equal(tsigRR.KeyName, s.name) || tsigRR.Algorithm != s.algorithm {
		return nil, ErrWrongKey
	}
	if len(tsigRR.MAC) < s.hashNew().Size() {
		return nil, ErrTruncatedMAC
	}

	stub := *tsigRR
	stub.MAC = nil
	tbs, err := EncodeResponseTBS(previousMAC, msgBytes, &stub)
	if err != nil {
		return nil, err
	}
	if !s.verify(tbs, tsigRR.MAC) {
		return nil, ErrMACMismatch
	}

	fudge := uint64(tsigRR.Fudge)
	var rangeStart uint64
	if tsigRR.TimeSigned > fudge {
		rangeStart = tsigRR.TimeSigned - fudge
	}
	return &VerifyResult{
		MAC:        tsigRR.MAC,
		TimeSigned: tsigRR.TimeSigned,
		RangeStart: rangeStart,
		RangeEnd:   tsigRR.TimeSigned + fudge,
	}, nil
}
