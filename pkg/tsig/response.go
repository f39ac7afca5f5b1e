package tsig

import "fmt"

// ResponseSigner is returned by exactly one of ResponseContext's three
// branches and produces the MessageSignature to attach to an outgoing
// response. It is single-use: a branch that cannot trust the request's
// signature returns an implementation whose Sign never touches the
// response bytes, since signing them would hand a forger a signature
// oracle.
type ResponseSigner interface {
	Sign(encodedResponse []byte) (*MessageSignature, error)
}

// ResponseContext is bound to one request (its message ID and a validated
// timestamp) and consumed by exactly one of Sign, BadSignature, or
// UnknownKey to produce the response signer for that request.
type ResponseContext struct {
	requestID uint16
	time      uint64
	consumed  bool
}

// NewResponseContext binds a response context to the request being
// answered.
func NewResponseContext(requestID uint16, time uint64) *ResponseContext {
	return &ResponseContext{requestID: requestID, time: time}
}

func (c *ResponseContext) consume() {
	if c.consumed {
		panic("tsig: ResponseContext consumed more than once")
	}
	c.consumed = true
}

// Sign is callable only once the request's signature has validated. It
// panics if optionalError is BadSig or BadKey, since both conditions
// require an unsigned response produced by BadSignature or UnknownKey
// instead.
func (c *ResponseContext) Sign(requestMAC []byte, optionalError uint16, signer *Signer) ResponseSigner {
	if optionalError == ErrorBadSig || optionalError == ErrorBadKey {
		panic(fmt.Sprintf("tsig: Sign called with error %d; use BadSignature or UnknownKey instead", optionalError))
	}
	c.consume()
	return &normalResponseSigner{
		signer: signer,
		stub: RR{
			KeyName:    signer.KeyName(),
			Algorithm:  signer.Algorithm(),
			TimeSigned: c.time,
			Fudge:      signer.Fudge(),
			OriginalID: c.requestID,
			Error:      optionalError,
		},
		requestMAC: requestMAC,
	}
}

// BadSignature produces the unsigned response a server sends when the
// request's signature fails to validate: error BadSig, empty MAC, and no
// MAC computed over the response body.
func (c *ResponseContext) BadSignature(signer *Signer) ResponseSigner {
	c.consume()
	return &unsignedResponseSigner{
		stub: RR{
			KeyName:    signer.KeyName(),
			Algorithm:  signer.Algorithm(),
			TimeSigned: c.time,
			Fudge:      signer.Fudge(),
			OriginalID: c.requestID,
			Error:      ErrorBadSig,
		},
	}
}

// UnknownKey produces the unsigned response a server sends when it cannot
// even identify a signer for the request's key name: error BadKey, empty
// MAC, owner name set to the received key name, and HMAC-SHA256/fudge=300
// as RFC-silent stand-in parameters.
func (c *ResponseContext) UnknownKey(keyName string) ResponseSigner {
	c.consume()
	return &unsignedResponseSigner{
		stub: RR{
			KeyName:    keyName,
			Algorithm:  HMACSHA256,
			TimeSigned: c.time,
			Fudge:      300,
			OriginalID: c.requestID,
			Error:      ErrorBadKey,
		},
	}
}

// normalResponseSigner signs the response under the trusted request's
// chain: its TBS is computed from the request MAC, exactly like any other
// chained response.
type normalResponseSigner struct {
	signer     *Signer
	stub       RR
	requestMAC []byte
	used       bool
}

func (s *normalResponseSigner) Sign(encodedResponse []byte) (*MessageSignature, error) {
	if s.used {
		panic("tsig: ResponseSigner used more than once")
	}
	s.used = true

	tbs, err := EncodeResponseTBS(s.requestMAC, encodedResponse, &s.stub)
	if err != nil {
		return nil, err
	}
	mac := s.signer.sign(tbs)
	rr := s.stub
	rr.MAC = mac
	return &MessageSignature{RR: rr, MAC: mac}, nil
}

// unsignedResponseSigner never computes a MAC; it carries a pre-built
// error TSIG RR and hands it back unchanged regardless of the response
// bytes it is asked to "sign".
type unsignedResponseSigner struct {
	stub RR
	used bool
}

func (s *unsignedResponseSigner) Sign(_ []byte) (*MessageSignature, error) {
	if s.used {
		panic("tsig: ResponseSigner used more than once")
	}
	s.used = true
	rr := s.stub
	rr.MAC = nil
	return &MessageSignature{RR: rr, MAC: nil}, nil
}
