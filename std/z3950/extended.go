package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// ExtendedServicesRequest creates, deletes or modifies a task package.
type ExtendedServicesRequest struct {
	ReferenceID            ReferenceID
	Function               ESFunction
	PackageType            ber.OID
	PackageName            optional.Optional[string]
	UserID                 optional.Optional[string]
	RetentionTime          *IntUnit
	Permissions            []*Permission
	Description            optional.Optional[string]
	TaskSpecificParameters *asn1.External
	WaitAction             WaitAction
	Elements               optional.Optional[string]
	OtherInfo              OtherInformation
}

type ESFunction int64

const (
	ESCreate ESFunction = 1
	ESDelete ESFunction = 2
	ESModify ESFunction = 3
)

var esFunctionNames = map[ESFunction]string{
	ESCreate: "create",
	ESDelete: "delete",
	ESModify: "modify",
}

type WaitAction int64

const (
	Wait              WaitAction = 1
	WaitIfPossible    WaitAction = 2
	DontWait          WaitAction = 3
	DontReturnPackage WaitAction = 4
)

var waitActionNames = map[WaitAction]string{
	Wait:              "wait",
	WaitIfPossible:    "waitIfPossible",
	DontWait:          "dontWait",
	DontReturnPackage: "dontReturnPackage",
}

// Permission grants functions on a task package to one user.
type Permission struct {
	UserID             string
	AllowableFunctions []AllowableFunction
}

type AllowableFunction int64

const (
	AllowDelete            AllowableFunction = 1
	AllowModifyContents    AllowableFunction = 2
	AllowModifyPermissions AllowableFunction = 3
	AllowPresent           AllowableFunction = 4
	AllowInvoke            AllowableFunction = 5
)

var allowableFunctionNames = map[AllowableFunction]string{
	AllowDelete:            "delete",
	AllowModifyContents:    "modifyContents",
	AllowModifyPermissions: "modifyPermissions",
	AllowPresent:           "present",
	AllowInvoke:            "invoke",
}

type ExtendedServicesResponse struct {
	ReferenceID     ReferenceID
	OperationStatus OperationStatus
	Diagnostics     []DiagRec
	TaskPackage     *asn1.External
	OtherInfo       OtherInformation
}

type OperationStatus int64

const (
	OperationDone     OperationStatus = 1
	OperationAccepted OperationStatus = 2
	OperationFailure  OperationStatus = 3
)

var operationStatusNames = map[OperationStatus]string{
	OperationDone:     "done",
	OperationAccepted: "accepted",
	OperationFailure:  "failure",
}

var (
	extendedServicesRequestCodec  = asn1.Seq[ExtendedServicesRequest]("ExtendedServicesRequest")
	extendedServicesResponseCodec = asn1.Seq[ExtendedServicesResponse]("ExtendedServicesResponse")
	permissionCodec               = asn1.Seq[Permission]("Permission")
)

func (r *ExtendedServicesRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("function", &r.Function, asn1.Implicit(3, enumCodec(esFunctionNames))),
		asn1.Req("packageType", &r.PackageType, asn1.Implicit(4, asn1.ObjectIdentifier)),
		asn1.Opt("packageName", &r.PackageName, asn1.Implicit(5, asn1.InternationalString)),
		asn1.Opt("userId", &r.UserID, asn1.Implicit(6, asn1.InternationalString)),
		asn1.OptPtr("retentionTime", &r.RetentionTime, asn1.Implicit(7, intUnitCodec)),
		asn1.OptSlice("permissions", &r.Permissions, asn1.Implicit(8, asn1.SequenceOf[[]*Permission](permissionCodec))),
		asn1.Opt("description", &r.Description, asn1.Implicit(9, asn1.InternationalString)),
		asn1.OptPtr("taskSpecificParameters", &r.TaskSpecificParameters, asn1.Implicit(10, asn1.ExternalCodec)),
		asn1.Req("waitAction", &r.WaitAction, asn1.Implicit(11, enumCodec(waitActionNames))),
		asn1.Opt("elements", &r.Elements, elementSetNameCodec),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (p *Permission) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("userId", &p.UserID, asn1.Implicit(1, asn1.InternationalString)),
		asn1.Req("allowableFunctions", &p.AllowableFunctions,
			asn1.Implicit(2, asn1.SequenceOf[[]AllowableFunction](enumCodec(allowableFunctionNames)))),
	}
}

func (r *ExtendedServicesResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("operationStatus", &r.OperationStatus, asn1.Implicit(3, enumCodec(operationStatusNames))),
		asn1.OptSlice("diagnostics", &r.Diagnostics, asn1.Implicit(4, diagRecsCodec)),
		asn1.OptPtr("taskPackage", &r.TaskPackage, asn1.Implicit(5, asn1.ExternalCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *ExtendedServicesRequest) String() string {
	return asn1.Sprint(extendedServicesRequestCodec, r)
}

func (r *ExtendedServicesResponse) String() string {
	return asn1.Sprint(extendedServicesResponseCodec, r)
}
