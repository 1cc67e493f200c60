package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// Close ends the association. Either side may send it.
type Close struct {
	ReferenceID           ReferenceID
	CloseReason           CloseReason
	DiagnosticInformation optional.Optional[string]
	ResourceReportFormat  ber.OID
	ResourceReport        *asn1.External
	OtherInfo             OtherInformation
}

type CloseReason int64

const (
	CloseFinished          CloseReason = 0
	CloseShutdown          CloseReason = 1
	CloseSystemProblem     CloseReason = 2
	CloseCostLimit         CloseReason = 3
	CloseResources         CloseReason = 4
	CloseSecurityViolation CloseReason = 5
	CloseProtocolError     CloseReason = 6
	CloseLackOfActivity    CloseReason = 7
	ClosePeerAbort         CloseReason = 8
	CloseUnspecified       CloseReason = 9
)

var closeReasonNames = map[CloseReason]string{
	CloseFinished:          "finished",
	CloseShutdown:          "shutdown",
	CloseSystemProblem:     "systemProblem",
	CloseCostLimit:         "costLimit",
	CloseResources:         "resources",
	CloseSecurityViolation: "securityViolation",
	CloseProtocolError:     "protocolError",
	CloseLackOfActivity:    "lackOfActivity",
	ClosePeerAbort:         "peerAbort",
	CloseUnspecified:       "unspecified",
}

func (r CloseReason) String() string {
	if s, ok := closeReasonNames[r]; ok {
		return s
	}
	return "unknown"
}

var closeCodec = asn1.Seq[Close]("Close")

func (c *Close) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &c.ReferenceID, referenceIDCodec),
		asn1.Req("closeReason", &c.CloseReason, asn1.Implicit(211, enumCodec(closeReasonNames))),
		asn1.Opt("diagnosticInformation", &c.DiagnosticInformation, asn1.Implicit(3, asn1.InternationalString)),
		asn1.OptSlice("resourceReportFormat", &c.ResourceReportFormat, asn1.Implicit(4, asn1.ObjectIdentifier)),
		asn1.OptPtr("resourceReport", &c.ResourceReport, asn1.Explicit(5, asn1.ExternalCodec)),
		asn1.OptSlice("otherInfo", &c.OtherInfo, otherInformationCodec),
	}
}

func (c *Close) String() string {
	return asn1.Sprint(closeCodec, c)
}
