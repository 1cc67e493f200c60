package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/types/optional"
)

// DeleteResultSetRequest deletes the listed result sets, or all of them.
type DeleteResultSetRequest struct {
	ReferenceID    ReferenceID
	DeleteFunction DeleteFunction
	ResultSetList  []string
	OtherInfo      OtherInformation
}

type DeleteFunction int64

const (
	DeleteList DeleteFunction = 0
	DeleteAll  DeleteFunction = 1
)

var deleteFunctionNames = map[DeleteFunction]string{
	DeleteList: "list",
	DeleteAll:  "all",
}

type DeleteResultSetResponse struct {
	ReferenceID           ReferenceID
	DeleteOperationStatus DeleteSetStatus
	DeleteListStatuses    []*ListStatus
	NumberNotDeleted      optional.Optional[int64]
	BulkStatuses          []*ListStatus
	DeleteMessage         optional.Optional[string]
	OtherInfo             OtherInformation
}

// ListStatus is the outcome of deleting one result set.
type ListStatus struct {
	ID     string
	Status DeleteSetStatus
}

type DeleteSetStatus int64

const (
	DeleteSuccess                          DeleteSetStatus = 0
	DeleteResultSetDidNotExist             DeleteSetStatus = 1
	DeletePreviouslyDeletedByTarget        DeleteSetStatus = 2
	DeleteSystemProblemAtTarget            DeleteSetStatus = 3
	DeleteAccessNotAllowed                 DeleteSetStatus = 4
	DeleteResourceControlAtOrigin          DeleteSetStatus = 5
	DeleteResourceControlAtTarget          DeleteSetStatus = 6
	DeleteBulkDeleteNotSupported           DeleteSetStatus = 7
	DeleteNotAllRsltSetsDeletedOnBulkDlte  DeleteSetStatus = 8
	DeleteNotAllRequestedResultSetsDeleted DeleteSetStatus = 9
	DeleteResultSetInUse                   DeleteSetStatus = 10
)

var deleteSetStatusNames = map[DeleteSetStatus]string{
	DeleteSuccess:                          "success",
	DeleteResultSetDidNotExist:             "resultSetDidNotExist",
	DeletePreviouslyDeletedByTarget:        "previouslyDeletedByTarget",
	DeleteSystemProblemAtTarget:            "systemProblemAtTarget",
	DeleteAccessNotAllowed:                 "accessNotAllowed",
	DeleteResourceControlAtOrigin:          "resourceControlAtOrigin",
	DeleteResourceControlAtTarget:          "resourceControlAtTarget",
	DeleteBulkDeleteNotSupported:           "bulkDeleteNotSupported",
	DeleteNotAllRsltSetsDeletedOnBulkDlte:  "notAllRsltSetsDeletedOnBulkDlte",
	DeleteNotAllRequestedResultSetsDeleted: "notAllRequestedResultSetsDeleted",
	DeleteResultSetInUse:                   "resultSetInUse",
}

var (
	deleteResultSetRequestCodec  = asn1.Seq[DeleteResultSetRequest]("DeleteResultSetRequest")
	deleteResultSetResponseCodec = asn1.Seq[DeleteResultSetResponse]("DeleteResultSetResponse")
	deleteSetStatusCodec         = asn1.Implicit(33, enumCodec(deleteSetStatusNames))
	listStatusesCodec            = asn1.SequenceOf[[]*ListStatus](asn1.Seq[ListStatus]("ListStatus"))
)

func (r *DeleteResultSetRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("deleteFunction", &r.DeleteFunction, asn1.Implicit(32, enumCodec(deleteFunctionNames))),
		asn1.OptSlice("resultSetList", &r.ResultSetList, asn1.SequenceOf[[]string](resultSetIDCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *DeleteResultSetResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("deleteOperationStatus", &r.DeleteOperationStatus, asn1.Implicit(0, deleteSetStatusCodec)),
		asn1.OptSlice("deleteListStatuses", &r.DeleteListStatuses, asn1.Implicit(1, listStatusesCodec)),
		asn1.Opt("numberNotDeleted", &r.NumberNotDeleted, asn1.Implicit(34, asn1.Integer)),
		asn1.OptSlice("bulkStatuses", &r.BulkStatuses, asn1.Implicit(35, listStatusesCodec)),
		asn1.Opt("deleteMessage", &r.DeleteMessage, asn1.Implicit(36, asn1.InternationalString)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (s *ListStatus) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("id", &s.ID, resultSetIDCodec),
		asn1.Req("status", &s.Status, deleteSetStatusCodec),
	}
}

func (r *DeleteResultSetRequest) String() string {
	return asn1.Sprint(deleteResultSetRequestCodec, r)
}

func (r *DeleteResultSetResponse) String() string {
	return asn1.Sprint(deleteResultSetResponseCodec, r)
}
