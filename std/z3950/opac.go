package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/types/optional"
)

// OPACRecord is a bibliographic record with its holdings and circulation
// data.
type OPACRecord struct {
	BibliographicRecord *asn1.External
	HoldingsData        []HoldingsRecord
}

// HoldingsRecord is MARCHoldingsRecord or *HoldingsAndCircData.
type HoldingsRecord interface {
	isHoldingsRecord()
}

type MARCHoldingsRecord struct{ *asn1.External }

func (MARCHoldingsRecord) isHoldingsRecord()   {}
func (*HoldingsAndCircData) isHoldingsRecord() {}

type HoldingsAndCircData struct {
	TypeOfRecord     optional.Optional[string]
	EncodingLevel    optional.Optional[string]
	Format           optional.Optional[string]
	ReceiptAcqStatus optional.Optional[string]
	GeneralRetention optional.Optional[string]
	Completeness     optional.Optional[string]
	DateOfReport     optional.Optional[string]
	NucCode          optional.Optional[string]
	LocalLocation    optional.Optional[string]
	ShelvingLocation optional.Optional[string]
	CallNumber       optional.Optional[string]
	ShelvingData     optional.Optional[string]
	CopyNumber       optional.Optional[string]
	PublicNote       optional.Optional[string]
	ReproductionNote optional.Optional[string]
	TermsUseRepro    optional.Optional[string]
	EnumAndChron     optional.Optional[string]
	Volumes          []*Volume
	CirculationData  []*CircRecord
}

type Volume struct {
	Enumeration  optional.Optional[string]
	Chronology   optional.Optional[string]
	EnumAndChron optional.Optional[string]
}

// CircRecord is the circulation status of one item.
type CircRecord struct {
	AvailableNow      bool
	AvailabilityDate  optional.Optional[string]
	AvailableThru     optional.Optional[string]
	Restrictions      optional.Optional[string]
	ItemID            optional.Optional[string]
	Renewable         bool
	OnHold            bool
	EnumAndChron      optional.Optional[string]
	Midspine          optional.Optional[string]
	TemporaryLocation optional.Optional[string]
}

var (
	opacRecordCodec          = asn1.Seq[OPACRecord]("OPACRecord")
	holdingsAndCircDataCodec = asn1.Seq[HoldingsAndCircData]("HoldingsAndCircData")
	volumeCodec              = asn1.Seq[Volume]("Volume")
	circRecordCodec          = asn1.Seq[CircRecord]("CircRecord")

	holdingsRecordCodec = asn1.Choice("HoldingsRecord",
		asn1.Alt[HoldingsRecord]("marcHoldingsRecord", asn1.Explicit(1, external[MARCHoldingsRecord]())),
		asn1.Alt[HoldingsRecord]("holdingsAndCirc", asn1.Implicit(2, holdingsAndCircDataCodec)),
	)
)

func (r *OPACRecord) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptPtr("bibliographicRecord", &r.BibliographicRecord, asn1.Explicit(1, asn1.ExternalCodec)),
		asn1.OptSlice("holdingsData", &r.HoldingsData, asn1.Implicit(2, asn1.SequenceOf[[]HoldingsRecord](holdingsRecordCodec))),
	}
}

func istr(n uint) asn1.Codec[string] {
	return asn1.Implicit(n, asn1.InternationalString)
}

func (h *HoldingsAndCircData) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("typeOfRecord", &h.TypeOfRecord, istr(1)),
		asn1.Opt("encodingLevel", &h.EncodingLevel, istr(2)),
		asn1.Opt("format", &h.Format, istr(3)),
		asn1.Opt("receiptAcqStatus", &h.ReceiptAcqStatus, istr(4)),
		asn1.Opt("generalRetention", &h.GeneralRetention, istr(5)),
		asn1.Opt("completeness", &h.Completeness, istr(6)),
		asn1.Opt("dateOfReport", &h.DateOfReport, istr(7)),
		asn1.Opt("nucCode", &h.NucCode, istr(8)),
		asn1.Opt("localLocation", &h.LocalLocation, istr(9)),
		asn1.Opt("shelvingLocation", &h.ShelvingLocation, istr(10)),
		asn1.Opt("callNumber", &h.CallNumber, istr(11)),
		asn1.Opt("shelvingData", &h.ShelvingData, istr(12)),
		asn1.Opt("copyNumber", &h.CopyNumber, istr(13)),
		asn1.Opt("publicNote", &h.PublicNote, istr(14)),
		asn1.Opt("reproductionNote", &h.ReproductionNote, istr(15)),
		asn1.Opt("termsUseRepro", &h.TermsUseRepro, istr(16)),
		asn1.Opt("enumAndChron", &h.EnumAndChron, istr(17)),
		asn1.OptSlice("volumes", &h.Volumes, asn1.Implicit(18, asn1.SequenceOf[[]*Volume](volumeCodec))),
		asn1.OptSlice("circulationData", &h.CirculationData, asn1.Implicit(19, asn1.SequenceOf[[]*CircRecord](circRecordCodec))),
	}
}

func (v *Volume) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("enumeration", &v.Enumeration, istr(1)),
		asn1.Opt("chronology", &v.Chronology, istr(2)),
		asn1.Opt("enumAndChron", &v.EnumAndChron, istr(3)),
	}
}

func (c *CircRecord) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("availableNow", &c.AvailableNow, asn1.Implicit(1, asn1.Boolean)),
		asn1.Opt("availablityDate", &c.AvailabilityDate, istr(2)),
		asn1.Opt("availableThru", &c.AvailableThru, istr(3)),
		asn1.Opt("restrictions", &c.Restrictions, istr(4)),
		asn1.Opt("itemId", &c.ItemID, istr(5)),
		asn1.Req("renewable", &c.Renewable, asn1.Implicit(6, asn1.Boolean)),
		asn1.Req("onHold", &c.OnHold, asn1.Implicit(7, asn1.Boolean)),
		asn1.Opt("enumAndChron", &c.EnumAndChron, istr(8)),
		asn1.Opt("midspine", &c.Midspine, istr(9)),
		asn1.Opt("temporaryLocation", &c.TemporaryLocation, istr(10)),
	}
}

func (r *OPACRecord) String() string {
	return asn1.Sprint(opacRecordCodec, r)
}
