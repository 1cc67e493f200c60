package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// Bits of ProtocolVersion.
const (
	Version1 = iota
	Version2
	Version3
)

// Bits of Options.
const (
	OptionSearch = iota
	OptionPresent
	OptionDelSet
	OptionResourceReport
	OptionTriggerResourceCtrl
	OptionResourceCtrl
	OptionAccessCtrl
	OptionScan
	OptionSort
	_
	OptionExtendedServices
	OptionLevel1Segmentation
	OptionLevel2Segmentation
	OptionConcurrentOperations
	OptionNamedResultSets
	OptionEncapsulation
	OptionResultCount
	OptionNegotiationModel
	OptionDuplicateDetection
	OptionQueryType104
	OptionPQESCorrection
	OptionStringSchema
)

// InitializeRequest opens a Z39.50 association.
type InitializeRequest struct {
	ReferenceID           ReferenceID
	ProtocolVersion       ber.BitString
	Options               ber.BitString
	PreferredMessageSize  int64
	ExceptionalRecordSize int64
	IDAuthentication      IDAuthentication
	ImplementationID      optional.Optional[string]
	ImplementationName    optional.Optional[string]
	ImplementationVersion optional.Optional[string]
	UserInformationField  *asn1.External
	OtherInfo             OtherInformation
}

// InitializeResponse accepts or rejects an association.
type InitializeResponse struct {
	ReferenceID           ReferenceID
	ProtocolVersion       ber.BitString
	Options               ber.BitString
	PreferredMessageSize  int64
	ExceptionalRecordSize int64
	Result                bool
	ImplementationID      optional.Optional[string]
	ImplementationName    optional.Optional[string]
	ImplementationVersion optional.Optional[string]
	UserInformationField  *asn1.External
	OtherInfo             OtherInformation
}

// IDAuthentication is one of OpenAuth, *IDPass, AnonymousAuth or OtherAuth.
type IDAuthentication interface {
	isIDAuthentication()
}

// OpenAuth is a single authentication string, often "user/password".
type OpenAuth string

type IDPass struct {
	GroupID  optional.Optional[string]
	UserID   optional.Optional[string]
	Password optional.Optional[string]
}

type AnonymousAuth struct{}

type OtherAuth struct{ *asn1.External }

func (OpenAuth) isIDAuthentication()      {}
func (*IDPass) isIDAuthentication()       {}
func (AnonymousAuth) isIDAuthentication() {}
func (OtherAuth) isIDAuthentication()     {}

var (
	initializeRequestCodec  = asn1.Seq[InitializeRequest]("InitializeRequest")
	initializeResponseCodec = asn1.Seq[InitializeResponse]("InitializeResponse")
	idPassCodec             = asn1.Seq[IDPass]("IdPass")

	protocolVersionCodec       = asn1.Implicit(3, asn1.BitString)
	optionsCodec               = asn1.Implicit(4, asn1.BitString)
	preferredMessageSizeCodec  = asn1.Implicit(5, asn1.Integer)
	exceptionalRecordSizeCodec = asn1.Implicit(6, asn1.Integer)

	idAuthenticationCodec = asn1.Choice("IdAuthentication",
		asn1.Alt[IDAuthentication]("open", asn1.Visible[OpenAuth]()),
		asn1.Alt[IDAuthentication]("idPass", idPassCodec),
		asn1.Alt[IDAuthentication]("anonymous", asn1.NullOf[AnonymousAuth]()),
		asn1.Alt[IDAuthentication]("other", external[OtherAuth]()),
	)
)

func (r *InitializeRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("protocolVersion", &r.ProtocolVersion, protocolVersionCodec),
		asn1.Req("options", &r.Options, optionsCodec),
		asn1.Req("preferredMessageSize", &r.PreferredMessageSize, preferredMessageSizeCodec),
		asn1.Req("exceptionalRecordSize", &r.ExceptionalRecordSize, exceptionalRecordSizeCodec),
		asn1.OptChoice("idAuthentication", &r.IDAuthentication, asn1.Explicit(7, idAuthenticationCodec)),
		asn1.Opt("implementationId", &r.ImplementationID, asn1.Implicit(110, asn1.InternationalString)),
		asn1.Opt("implementationName", &r.ImplementationName, asn1.Implicit(111, asn1.InternationalString)),
		asn1.Opt("implementationVersion", &r.ImplementationVersion, asn1.Implicit(112, asn1.InternationalString)),
		asn1.OptPtr("userInformationField", &r.UserInformationField, asn1.Explicit(11, asn1.ExternalCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *InitializeResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("protocolVersion", &r.ProtocolVersion, protocolVersionCodec),
		asn1.Req("options", &r.Options, optionsCodec),
		asn1.Req("preferredMessageSize", &r.PreferredMessageSize, preferredMessageSizeCodec),
		asn1.Req("exceptionalRecordSize", &r.ExceptionalRecordSize, exceptionalRecordSizeCodec),
		asn1.Req("result", &r.Result, asn1.Implicit(12, asn1.Boolean)),
		asn1.Opt("implementationId", &r.ImplementationID, asn1.Implicit(110, asn1.InternationalString)),
		asn1.Opt("implementationName", &r.ImplementationName, asn1.Implicit(111, asn1.InternationalString)),
		asn1.Opt("implementationVersion", &r.ImplementationVersion, asn1.Implicit(112, asn1.InternationalString)),
		asn1.OptPtr("userInformationField", &r.UserInformationField, asn1.Explicit(11, asn1.ExternalCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (p *IDPass) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("groupId", &p.GroupID, asn1.Implicit(0, asn1.InternationalString)),
		asn1.Opt("userId", &p.UserID, asn1.Implicit(1, asn1.InternationalString)),
		asn1.Opt("password", &p.Password, asn1.Implicit(2, asn1.InternationalString)),
	}
}

func (r *InitializeRequest) String() string {
	return asn1.Sprint(initializeRequestCodec, r)
}

func (r *InitializeResponse) String() string {
	return asn1.Sprint(initializeResponseCodec, r)
}

func (p *IDPass) String() string {
	return asn1.Sprint(idPassCodec, p)
}
