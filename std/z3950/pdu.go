package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
)

// PDU is a Z39.50 application protocol data unit, one of the request and
// response types below, always as a pointer.
type PDU interface {
	isPDU()
}

func (*InitializeRequest) isPDU()             {}
func (*InitializeResponse) isPDU()            {}
func (*SearchRequest) isPDU()                 {}
func (*SearchResponse) isPDU()                {}
func (*PresentRequest) isPDU()                {}
func (*PresentResponse) isPDU()               {}
func (*DeleteResultSetRequest) isPDU()        {}
func (*DeleteResultSetResponse) isPDU()       {}
func (*AccessControlRequest) isPDU()          {}
func (*AccessControlResponse) isPDU()         {}
func (*ResourceControlRequest) isPDU()        {}
func (*ResourceControlResponse) isPDU()       {}
func (*TriggerResourceControlRequest) isPDU() {}
func (*ResourceReportRequest) isPDU()         {}
func (*ResourceReportResponse) isPDU()        {}
func (*ScanRequest) isPDU()                   {}
func (*ScanResponse) isPDU()                  {}
func (*SortRequest) isPDU()                   {}
func (*SortResponse) isPDU()                  {}
func (*Segment) isPDU()                       {}
func (*ExtendedServicesRequest) isPDU()       {}
func (*ExtendedServicesResponse) isPDU()      {}
func (*Close) isPDU()                         {}
func (*DuplicateDetectionRequest) isPDU()     {}
func (*DuplicateDetectionResponse) isPDU()    {}

// PDUCodec is the codec of the top-level PDU CHOICE.
var PDUCodec = asn1.Choice("PDU",
	asn1.Alt[PDU]("initRequest", asn1.Implicit(20, initializeRequestCodec)),
	asn1.Alt[PDU]("initResponse", asn1.Implicit(21, initializeResponseCodec)),
	asn1.Alt[PDU]("searchRequest", asn1.Implicit(22, searchRequestCodec)),
	asn1.Alt[PDU]("searchResponse", asn1.Implicit(23, searchResponseCodec)),
	asn1.Alt[PDU]("presentRequest", asn1.Implicit(24, presentRequestCodec)),
	asn1.Alt[PDU]("presentResponse", asn1.Implicit(25, presentResponseCodec)),
	asn1.Alt[PDU]("deleteResultSetRequest", asn1.Implicit(26, deleteResultSetRequestCodec)),
	asn1.Alt[PDU]("deleteResultSetResponse", asn1.Implicit(27, deleteResultSetResponseCodec)),
	asn1.Alt[PDU]("accessControlRequest", asn1.Implicit(28, accessControlRequestCodec)),
	asn1.Alt[PDU]("accessControlResponse", asn1.Implicit(29, accessControlResponseCodec)),
	asn1.Alt[PDU]("resourceControlRequest", asn1.Implicit(30, resourceControlRequestCodec)),
	asn1.Alt[PDU]("resourceControlResponse", asn1.Implicit(31, resourceControlResponseCodec)),
	asn1.Alt[PDU]("triggerResourceControlRequest", asn1.Implicit(32, triggerResourceControlRequestCodec)),
	asn1.Alt[PDU]("resourceReportRequest", asn1.Implicit(33, resourceReportRequestCodec)),
	asn1.Alt[PDU]("resourceReportResponse", asn1.Implicit(34, resourceReportResponseCodec)),
	asn1.Alt[PDU]("scanRequest", asn1.Implicit(35, scanRequestCodec)),
	asn1.Alt[PDU]("scanResponse", asn1.Implicit(36, scanResponseCodec)),
	asn1.Alt[PDU]("sortRequest", asn1.Implicit(43, sortRequestCodec)),
	asn1.Alt[PDU]("sortResponse", asn1.Implicit(44, sortResponseCodec)),
	asn1.Alt[PDU]("segmentRequest", asn1.Implicit(45, segmentCodec)),
	asn1.Alt[PDU]("extendedServicesRequest", asn1.Implicit(46, extendedServicesRequestCodec)),
	asn1.Alt[PDU]("extendedServicesResponse", asn1.Implicit(47, extendedServicesResponseCodec)),
	asn1.Alt[PDU]("close", asn1.Implicit(48, closeCodec)),
	asn1.Alt[PDU]("duplicateDetectionRequest", asn1.Implicit(49, duplicateDetectionRequestCodec)),
	asn1.Alt[PDU]("duplicateDetectionResponse", asn1.Implicit(50, duplicateDetectionResponseCodec)),
)

// DecodePDU decodes a framed node tree into a PDU.
func DecodePDU(n *ber.Node) (PDU, error) {
	return PDUCodec.Decode(n, true)
}

// EncodePDU encodes p into a node tree.
func EncodePDU(p PDU) (*ber.Node, error) {
	return PDUCodec.Encode(p)
}

// ReadPDU reads and decodes the next PDU from d. It returns io.EOF when the
// stream ends cleanly between PDUs.
func ReadPDU(d *ber.Decoder) (PDU, error) {
	n, err := d.ReadNode()
	if err != nil {
		return nil, err
	}
	return DecodePDU(n)
}

// Parse decodes a PDU from buf, which must hold exactly one TLV unit.
func Parse(buf []byte, opts ...ber.Option) (PDU, error) {
	return asn1.Unmarshal(PDUCodec, buf, opts...)
}

// Marshal returns the wire encoding of p.
func Marshal(p PDU) ([]byte, error) {
	return asn1.Marshal(PDUCodec, p)
}

// Sprint renders p in value notation, prefixed by its alternative name.
func Sprint(p PDU) string {
	return asn1.Sprint(PDUCodec, p)
}

// Name returns the PDU CHOICE alternative name of p, e.g. "searchRequest",
// or "unknown".
func Name(p PDU) string {
	if name := asn1.AlternativeName(PDUCodec, p); name != "" {
		return name
	}
	return "unknown"
}
