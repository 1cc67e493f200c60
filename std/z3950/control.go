package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// AccessControlRequest challenges the origin during an operation.
type AccessControlRequest struct {
	ReferenceID       ReferenceID
	SecurityChallenge SecurityChallenge
	OtherInfo         OtherInformation
}

// SecurityChallenge is SimpleChallenge or ExternalChallenge.
type SecurityChallenge interface {
	isSecurityChallenge()
}

type SimpleChallenge []byte
type ExternalChallenge struct{ *asn1.External }

func (SimpleChallenge) isSecurityChallenge()   {}
func (ExternalChallenge) isSecurityChallenge() {}

type AccessControlResponse struct {
	ReferenceID               ReferenceID
	SecurityChallengeResponse SecurityChallengeResponse
	Diagnostic                DiagRec
	OtherInfo                 OtherInformation
}

// SecurityChallengeResponse is SimpleChallengeResponse or
// ExternalChallengeResponse.
type SecurityChallengeResponse interface {
	isSecurityChallengeResponse()
}

type SimpleChallengeResponse []byte
type ExternalChallengeResponse struct{ *asn1.External }

func (SimpleChallengeResponse) isSecurityChallengeResponse()   {}
func (ExternalChallengeResponse) isSecurityChallengeResponse() {}

var (
	accessControlRequestCodec  = asn1.Seq[AccessControlRequest]("AccessControlRequest")
	accessControlResponseCodec = asn1.Seq[AccessControlResponse]("AccessControlResponse")

	securityChallengeCodec = asn1.Choice("securityChallenge",
		asn1.Alt[SecurityChallenge]("simpleForm", asn1.Implicit(37, asn1.Octets[SimpleChallenge]())),
		asn1.Alt[SecurityChallenge]("externallyDefined", asn1.Explicit(0, external[ExternalChallenge]())),
	)

	securityChallengeResponseCodec = asn1.Choice("securityChallengeResponse",
		asn1.Alt[SecurityChallengeResponse]("simpleForm", asn1.Implicit(38, asn1.Octets[SimpleChallengeResponse]())),
		asn1.Alt[SecurityChallengeResponse]("externallyDefined", asn1.Explicit(0, external[ExternalChallengeResponse]())),
	)
)

func (r *AccessControlRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("securityChallenge", &r.SecurityChallenge, securityChallengeCodec),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *AccessControlResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.OptChoice("securityChallengeResponse", &r.SecurityChallengeResponse, securityChallengeResponseCodec),
		asn1.OptChoice("diagnostic", &r.Diagnostic, asn1.Explicit(223, diagRecCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *AccessControlRequest) String() string {
	return asn1.Sprint(accessControlRequestCodec, r)
}

func (r *AccessControlResponse) String() string {
	return asn1.Sprint(accessControlResponseCodec, r)
}

// ResourceControlRequest asks the origin whether an operation that has run
// into a resource limit should continue.
type ResourceControlRequest struct {
	ReferenceID             ReferenceID
	SuspendedFlag           optional.Optional[bool]
	ResourceReport          *asn1.External
	PartialResultsAvailable optional.Optional[ResultSetStatus]
	ResponseRequired        bool
	TriggeredRequestFlag    optional.Optional[bool]
	OtherInfo               OtherInformation
}

type ResourceControlResponse struct {
	ReferenceID     ReferenceID
	ContinueFlag    bool
	ResultSetWanted optional.Optional[bool]
	OtherInfo       OtherInformation
}

type TriggerResourceControlRequest struct {
	ReferenceID              ReferenceID
	RequestedAction          RequestedAction
	PrefResourceReportFormat ber.OID
	ResultSetWanted          optional.Optional[bool]
	OtherInfo                OtherInformation
}

type RequestedAction int64

const (
	ActionResourceReport  RequestedAction = 1
	ActionResourceControl RequestedAction = 2
	ActionCancel          RequestedAction = 3
)

var requestedActionNames = map[RequestedAction]string{
	ActionResourceReport:  "resourceReport",
	ActionResourceControl: "resourceControl",
	ActionCancel:          "cancel",
}

type ResourceReportRequest struct {
	ReferenceID              ReferenceID
	OpID                     ReferenceID
	PrefResourceReportFormat ber.OID
	OtherInfo                OtherInformation
}

type ResourceReportResponse struct {
	ReferenceID          ReferenceID
	ResourceReportStatus ResourceReportStatus
	ResourceReport       *asn1.External
	OtherInfo            OtherInformation
}

type ResourceReportStatus int64

const (
	ReportSuccess  ResourceReportStatus = 0
	ReportPartial  ResourceReportStatus = 1
	ReportFailure1 ResourceReportStatus = 2
	ReportFailure2 ResourceReportStatus = 3
	ReportFailure3 ResourceReportStatus = 4
	ReportFailure4 ResourceReportStatus = 5
	ReportFailure5 ResourceReportStatus = 6
	ReportFailure6 ResourceReportStatus = 7
)

var resourceReportStatusNames = map[ResourceReportStatus]string{
	ReportSuccess:  "success",
	ReportPartial:  "partial",
	ReportFailure1: "failure-1",
	ReportFailure2: "failure-2",
	ReportFailure3: "failure-3",
	ReportFailure4: "failure-4",
	ReportFailure5: "failure-5",
	ReportFailure6: "failure-6",
}

var (
	resourceControlRequestCodec        = asn1.Seq[ResourceControlRequest]("ResourceControlRequest")
	resourceControlResponseCodec       = asn1.Seq[ResourceControlResponse]("ResourceControlResponse")
	triggerResourceControlRequestCodec = asn1.Seq[TriggerResourceControlRequest]("TriggerResourceControlRequest")
	resourceReportRequestCodec         = asn1.Seq[ResourceReportRequest]("ResourceReportRequest")
	resourceReportResponseCodec        = asn1.Seq[ResourceReportResponse]("ResourceReportResponse")
)

func (r *ResourceControlRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Opt("suspendedFlag", &r.SuspendedFlag, asn1.Implicit(39, asn1.Boolean)),
		asn1.OptPtr("resourceReport", &r.ResourceReport, asn1.Explicit(40, asn1.ExternalCodec)),
		asn1.Opt("partialResultsAvailable", &r.PartialResultsAvailable, asn1.Implicit(41, enumCodec(resultSetStatusNames))),
		asn1.Req("responseRequired", &r.ResponseRequired, asn1.Implicit(42, asn1.Boolean)),
		asn1.Opt("triggeredRequestFlag", &r.TriggeredRequestFlag, asn1.Implicit(43, asn1.Boolean)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *ResourceControlResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("continueFlag", &r.ContinueFlag, asn1.Implicit(44, asn1.Boolean)),
		asn1.Opt("resultSetWanted", &r.ResultSetWanted, asn1.Implicit(45, asn1.Boolean)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *TriggerResourceControlRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("requestedAction", &r.RequestedAction, asn1.Implicit(46, enumCodec(requestedActionNames))),
		asn1.OptSlice("prefResourceReportFormat", &r.PrefResourceReportFormat, asn1.Implicit(47, asn1.ObjectIdentifier)),
		asn1.Opt("resultSetWanted", &r.ResultSetWanted, asn1.Implicit(48, asn1.Boolean)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *ResourceReportRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.OptSlice("opId", &r.OpID, asn1.Implicit(210, referenceIDCodec)),
		asn1.OptSlice("prefResourceReportFormat", &r.PrefResourceReportFormat, asn1.Implicit(49, asn1.ObjectIdentifier)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *ResourceReportResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("resourceReportStatus", &r.ResourceReportStatus, asn1.Implicit(50, enumCodec(resourceReportStatusNames))),
		asn1.OptPtr("resourceReport", &r.ResourceReport, asn1.Explicit(51, asn1.ExternalCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *ResourceControlRequest) String() string {
	return asn1.Sprint(resourceControlRequestCodec, r)
}

func (r *ResourceControlResponse) String() string {
	return asn1.Sprint(resourceControlResponseCodec, r)
}

func (r *TriggerResourceControlRequest) String() string {
	return asn1.Sprint(triggerResourceControlRequestCodec, r)
}

func (r *ResourceReportRequest) String() string {
	return asn1.Sprint(resourceReportRequestCodec, r)
}

func (r *ResourceReportResponse) String() string {
	return asn1.Sprint(resourceReportResponseCodec, r)
}
