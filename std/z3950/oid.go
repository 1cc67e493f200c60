package z3950

import "github.com/opencatalog/z3950/std/ber"

// Z3950 is the root of the Z39.50 object identifier tree.
var Z3950 = ber.OID{1, 2, 840, 10003}

// Attribute sets.
var (
	AttrSetBib1  = Z3950.Append(3, 1)
	AttrSetExp1  = Z3950.Append(3, 2)
	AttrSetExt1  = Z3950.Append(3, 3)
	AttrSetCCL1  = Z3950.Append(3, 4)
	AttrSetGILS  = Z3950.Append(3, 5)
	AttrSetSTAS  = Z3950.Append(3, 6)
	AttrSetUtil  = Z3950.Append(3, 11)
	AttrSetZthes = Z3950.Append(3, 13)
)

// Diagnostic sets and formats.
var (
	DiagSetBib1  = Z3950.Append(4, 1)
	DiagSetDiag1 = Z3950.Append(4, 2)
)

// Record syntaxes.
var (
	SyntaxUNIMARC   = Z3950.Append(5, 1)
	SyntaxIntermarc = Z3950.Append(5, 2)
	SyntaxCCF       = Z3950.Append(5, 3)
	SyntaxUSMARC    = Z3950.Append(5, 10)
	SyntaxUKMARC    = Z3950.Append(5, 11)
	SyntaxNORMARC   = Z3950.Append(5, 12)
	SyntaxDANMARC   = Z3950.Append(5, 14)
	SyntaxFINMARC   = Z3950.Append(5, 15)
	SyntaxMAB       = Z3950.Append(5, 16)
	SyntaxCANMARC   = Z3950.Append(5, 17)
	SyntaxPICAMARC  = Z3950.Append(5, 19)
	SyntaxExplain   = Z3950.Append(5, 100)
	SyntaxSUTRS     = Z3950.Append(5, 101)
	SyntaxOPAC      = Z3950.Append(5, 102)
	SyntaxSummary   = Z3950.Append(5, 103)
	SyntaxGRS0      = Z3950.Append(5, 104)
	SyntaxGRS1      = Z3950.Append(5, 105)
	SyntaxExtended  = Z3950.Append(5, 106)
	SyntaxFragment  = Z3950.Append(5, 107)
	SyntaxXML       = Z3950.Append(5, 109, 10)
)

// Other registered objects.
var (
	ResourceReport1 = Z3950.Append(7, 1)
	ResourceReport2 = Z3950.Append(7, 2)
	AccessPrompt1   = Z3950.Append(8, 1)
	AccessDES1      = Z3950.Append(8, 2)
	AccessKRB1      = Z3950.Append(8, 3)
	ESpec1          = Z3950.Append(11, 1)
	ESpec2          = Z3950.Append(11, 2)
	UserInfoCharSet = Z3950.Append(15, 3)
	QueryCQL        = Z3950.Append(16, 2)
)

var oidNames = []struct {
	oid  ber.OID
	name string
}{
	{AttrSetBib1, "bib-1"},
	{AttrSetExp1, "exp-1"},
	{AttrSetExt1, "ext-1"},
	{AttrSetCCL1, "ccl-1"},
	{AttrSetGILS, "gils"},
	{AttrSetSTAS, "stas"},
	{AttrSetUtil, "util"},
	{AttrSetZthes, "zthes"},
	{DiagSetBib1, "diag-bib-1"},
	{DiagSetDiag1, "diag-1"},
	{SyntaxUNIMARC, "unimarc"},
	{SyntaxIntermarc, "intermarc"},
	{SyntaxCCF, "ccf"},
	{SyntaxUSMARC, "usmarc"},
	{SyntaxUKMARC, "ukmarc"},
	{SyntaxNORMARC, "normarc"},
	{SyntaxDANMARC, "danmarc"},
	{SyntaxFINMARC, "finmarc"},
	{SyntaxMAB, "mab"},
	{SyntaxCANMARC, "canmarc"},
	{SyntaxPICAMARC, "picamarc"},
	{SyntaxExplain, "explain"},
	{SyntaxSUTRS, "sutrs"},
	{SyntaxOPAC, "opac"},
	{SyntaxSummary, "summary"},
	{SyntaxGRS0, "grs-0"},
	{SyntaxGRS1, "grs-1"},
	{SyntaxExtended, "extended"},
	{SyntaxFragment, "fragment"},
	{SyntaxXML, "xml"},
	{ResourceReport1, "resource-1"},
	{ResourceReport2, "resource-2"},
	{AccessPrompt1, "prompt-1"},
	{AccessDES1, "des-1"},
	{AccessKRB1, "krb-1"},
	{ESpec1, "espec-1"},
	{ESpec2, "espec-2"},
	{UserInfoCharSet, "charSetandLanguageNegotiation"},
	{QueryCQL, "cql"},
}

// OIDName returns the registered short name of o, or its dotted form.
func OIDName(o ber.OID) string {
	for _, e := range oidNames {
		if e.oid.Equal(o) {
			return e.name
		}
	}
	return o.String()
}

// IsMARC reports whether o names one of the MARC family record syntaxes,
// which are carried as octet-aligned EXTERNALs.
func IsMARC(o ber.OID) bool {
	if !o.HasPrefix(Z3950.Append(5)) || len(o) != 6 {
		return false
	}
	return o[5] <= 30 && o[5] != 3
}
