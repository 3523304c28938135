package cipher

// rows holds the scrambler wiring for every rotor position AAA..HHH, one
// 8-letter map per position. Each row is a fixed-point-free involution.
var rows = [Positions]string{
	"FEDCBAHG", "ECBHAGFD", "CEAFBDHG", "GEDCBHAF", "GEFHBCAD", "FEDCBAHG", "GEHFBDAC", "DGFAHCBE",
	"CFAGHBDE", "DGFAHCBE", "DGEACHBF", "DGFAHCBE", "HDEBCGFA", "CEAHBGFD", "DCBAHGFE", "FHGEDACB",
	"BAEFCDHG", "BADCGHEF", "HFEGCBDA", "CFAHGBED", "CHAEDGFB", "DHEACGFB", "GHFEDCAB", "GCBFHDAE",
	"FCBEDAHG", "HFGEDBCA", "EGFHACBD", "DEHABGFC", "HFGEDBCA", "DFEACBHG", "HGDCFEBA", "EHGFADCB",
	"CEAGBHDF", "BAHFGDEC", "FDHBGAEC", "GHFEDCAB", "HEFGBCDA", "FGDCHABE", "FCBGHADE", "ECBHAGFD",
	"DEFABCHG", "FHDCGAEB", "CDABHGFE", "EDHBAGFC", "CHAGFEDB", "CFAHGBED", "FHDCGAEB", "GDFBHCAE",
	"EDFBACHG", "FEDCBAHG", "BAHEDGFC", "CFAEDBHG", "HCBFGDEA", "FHDCGAEB", "DEHABGFC", "EGDCAHBF",
	"HFDCGBEA", "GFDCHBAE", "GDHBFEAC", "GDEBCHAF", "DHEACGFB", "DCBAHGFE", "HEGFBDCA", "FEHGBADC",
	"CHAFGDEB", "EDFBACHG", "BAHGFEDC", "DFHAGBEC", "FEHGBADC", "FHEGCADB", "CEAHBGFD", "GHFEDCAB",
	"GHFEDCAB", "HFGEDBCA", "BADCHGFE", "HGFEDCBA", "DHGAFECB", "HEFGBCDA", "BAEFCDHG", "HFDCGBEA",
	"DFGAHBCE", "HGFEDCBA", "GFDCHBAE", "GHDCFEAB", "BAFGHCDE", "DGEACHBF", "CEAGBHDF", "GDHBFEAC",
	"CDABFEHG", "BAHEDGFC", "EDHBAGFC", "DCBAGHEF", "CGAEDHBF", "DHFAGCEB", "CFAEDBHG", "CHAEDGFB",
	"BAFGHCDE", "GEHFBDAC", "HCBEDGFA", "FDGBHACE", "HEDCBGFA", "HCBFGDEA", "GDHBFEAC", "ECBHAGFD",
	"GHFEDCAB", "DHEACGFB", "FDGBHACE", "CEAFBDHG", "HCBFGDEA", "GCBEDHAF", "CGAHFEBD", "GEFHBCAD",
	"ECBGAHDF", "BAEFCDHG", "FEHGBADC", "FCBGHADE", "FHEGCADB", "BAFHGCED", "HFDCGBEA", "DHGAFECB",
	"HGEFCDBA", "BAEFCDHG", "GHEFCDAB", "GFHEDBAC", "DEGABHCF", "CGAFHDBE", "HEFGBCDA", "HCBEDGFA",
	"DGFAHCBE", "CEAFBDHG", "EHGFADCB", "GFEHCBAD", "BAHGFEDC", "CHAEDGFB", "BADCGHEF", "FEGHBACD",
	"CEAHBGFD", "FCBHGAED", "EFHGABDC", "EDGBAHCF", "CDABFEHG", "CEAFBDHG", "GEDCBHAF", "CDABFEHG",
	"BAHGFEDC", "FCBEDAHG", "BAEHCGFD", "EFHGABDC", "FGEHCABD", "BAFEDCHG", "HEDCBGFA", "FHGEDACB",
	"BAGHFECD", "DGFAHCBE", "BAHEDGFC", "DHGAFECB", "BAFGHCDE", "DFEACBHG", "GCBEDHAF", "HCBEDGFA",
	"CFAHGBED", "FEHGBADC", "HCBFGDEA", "GDEBCHAF", "HDFBGCEA", "EHDCAGFB", "FDEBCAHG", "HDEBCGFA",
	"BAHGFEDC", "CFAHGBED", "FGHEDABC", "GHEFCDAB", "GDEBCHAF", "HEFGBCDA", "GHFEDCAB", "FDHBGAEC",
	"HCBEDGFA", "HEDCBGFA", "BAGHFECD", "BAGHFECD", "EDFBACHG", "ECBGAHDF", "GFDCHBAE", "FHGEDACB",
	"GEFHBCAD", "HDFBGCEA", "BAGEDHCF", "BAEHCGFD", "FEHGBADC", "GEDCBHAF", "CFAGHBDE", "HFGEDBCA",
	"EGDCAHBF", "DHGAFECB", "ECBFADHG", "HDGBFECA", "CHAGFEDB", "EFHGABDC", "EFHGABDC", "HCBEDGFA",
	"BAHGFEDC", "DCBAGHEF", "BAHGFEDC", "GCBHFEAD", "CDABHGFE", "DEHABGFC", "CEAGBHDF", "CEAHBGFD",
	"EDFBACHG", "GCBEDHAF", "BAEHCGFD", "FCBGHADE", "EDHBAGFC", "DHEACGFB", "CHAGFEDB", "HFEGCBDA",
	"DCBAHGFE", "HCBEDGFA", "GFEHCBAD", "DCBAFEHG", "DGHAFEBC", "DHFAGCEB", "EGHFADBC", "CFAEDBHG",
	"BAEHCGFD", "GEFHBCAD", "BAEHCGFD", "DFEACBHG", "FGHEDABC", "BAGFHDCE", "BAFHGCED", "HGEFCDBA",
	"GEFHBCAD", "GFHEDBAC", "HEGFBDCA", "BAEFCDHG", "CGAEDHBF", "CFAEDBHG", "FGEHCABD", "HDGBFECA",
	"BADCGHEF", "EDHBAGFC", "CGAFHDBE", "BAFHGCED", "BAEFCDHG", "CHAFGDEB", "EFGHABCD", "GCBHFEAD",
	"CHAGFEDB", "CDABFEHG", "BADCGHEF", "GDFBHCAE", "CEAGBHDF", "CEAFBDHG", "BADCGHEF", "DHEACGFB",
	"DGEACHBF", "BAHEDGFC", "FCBHGAED", "BAHFGDEC", "BAGEDHCF", "EHFGACDB", "BADCFEHG", "BAHFGDEC",
	"HCBGFEDA", "HCBEDGFA", "FCBHGAED", "GCBFHDAE", "ECBFADHG", "FGDCHABE", "EGDCAHBF", "CDABFEHG",
	"CDABFEHG", "DCBAHGFE", "GCBFHDAE", "BAGFHDCE", "GEFHBCAD", "EHDCAGFB", "GCBHFEAD", "GFHEDBAC",
	"GEHFBDAC", "DFGAHBCE", "FGHEDABC", "BADCGHEF", "HGFEDCBA", "HCBGFEDA", "EGFHACBD", "FGHEDABC",
	"ECBHAGFD", "EHFGACDB", "FGDCHABE", "BADCGHEF", "DHEACGFB", "HDFBGCEA", "EFGHABCD", "FEDCBAHG",
	"GDFBHCAE", "CHAFGDEB", "EGFHACBD", "GFDCHBAE", "EFDCABHG", "GFHEDBAC", "BAGFHDCE", "GFDCHBAE",
	"GFEHCBAD", "GDEBCHAF", "HDEBCGFA", "DFGAHBCE", "GDFBHCAE", "HFEGCBDA", "EDFBACHG", "CGAHFEBD",
	"DCBAHGFE", "BAFEDCHG", "BAEGCHDF", "EFGHABCD", "CEAFBDHG", "GHEFCDAB", "DGFAHCBE", "DCBAGHEF",
	"EFHGABDC", "DFHAGBEC", "BAGEDHCF", "DFHAGBEC", "FEHGBADC", "DHFAGCEB", "GFEHCBAD", "HDGBFECA",
	"HCBGFEDA", "ECBGAHDF", "HGDCFEBA", "EHGFADCB", "ECBGAHDF", "ECBGAHDF", "FCBHGAED", "HGDCFEBA",
	"HCBGFEDA", "FEDCBAHG", "FGHEDABC", "CFAEDBHG", "DGHAFEBC", "GEHFBDAC", "FDEBCAHG", "CFAHGBED",
	"CGAFHDBE", "BADCHGFE", "HFGEDBCA", "GHEFCDAB", "EGDCAHBF", "EGHFADBC", "BAHEDGFC", "CHAEDGFB",
	"ECBGAHDF", "DFHAGBEC", "EGHFADBC", "FGHEDABC", "GHFEDCAB", "GHDCFEAB", "BAEHCGFD", "HEDCBGFA",
	"DHEACGFB", "GCBFHDAE", "FDHBGAEC", "BAHFGDEC", "GDFBHCAE", "HFGEDBCA", "BADCGHEF", "FDHBGAEC",
	"FEGHBACD", "HFEGCBDA", "GDFBHCAE", "BAEFCDHG", "DCBAFEHG", "FEDCBAHG", "BAFHGCED", "HFEGCBDA",
	"DEFABCHG", "EGDCAHBF", "GDHBFEAC", "GHEFCDAB", "BAFGHCDE", "FGHEDABC", "GHFEDCAB", "BADCGHEF",
	"HEDCBGFA", "HFGEDBCA", "CEAGBHDF", "CEAHBGFD", "BAGEDHCF", "HCBGFEDA", "FDGBHACE", "FEHGBADC",
	"EDGBAHCF", "EHFGACDB", "DFEACBHG", "FEDCBAHG", "HEDCBGFA", "FGEHCABD", "BAGHFECD", "BAGFHDCE",
	"HDGBFECA", "FCBHGAED", "DHFAGCEB", "BAEHCGFD", "EFGHABCD", "HCBEDGFA", "HDEBCGFA", "FHDCGAEB",
	"DEGABHCF", "EFDCABHG", "CGAFHDBE", "BAGEDHCF", "HCBGFEDA", "CDABHGFE", "BAGHFECD", "HCBFGDEA",
	"DFHAGBEC", "HDFBGCEA", "GFHEDBAC", "BADCGHEF", "DHFAGCEB", "EGFHACBD", "CGAFHDBE", "HEGFBDCA",
	"FEDCBAHG", "GHDCFEAB", "DFEACBHG", "CGAEDHBF", "CFAGHBDE", "HFDCGBEA", "GHDCFEAB", "HGFEDCBA",
	"HDFBGCEA", "FDEBCAHG", "EFGHABCD", "BAGEDHCF", "CFAEDBHG", "DEFABCHG", "BADCGHEF", "EGFHACBD",
	"GFDCHBAE", "BAFHGCED", "BAFHGCED", "CEAFBDHG", "FGDCHABE", "BADCFEHG", "BAHGFEDC", "EGHFADBC",
	"BADCGHEF", "BADCGHEF", "GDFBHCAE", "HGDCFEBA", "GEDCBHAF", "ECBGAHDF", "FCBEDAHG", "HDFBGCEA",
	"EFHGABDC", "BAFGHCDE", "DHGAFECB", "EDGBAHCF", "FDGBHACE", "BAEHCGFD", "BAHFGDEC", "FHGEDACB",
	"GDHBFEAC", "GHDCFEAB", "GDEBCHAF", "GFHEDBAC", "FHGEDACB", "BADCFEHG", "FCBGHADE", "FEDCBAHG",
	"EFHGABDC", "DEFABCHG", "HFEGCBDA", "EHGFADCB", "GDHBFEAC", "CGAEDHBF", "DGHAFEBC", "EDHBAGFC",
	"BAFHGCED", "EDHBAGFC", "ECBGAHDF", "EFGHABCD", "BAFHGCED", "GCBEDHAF", "HFEGCBDA", "CEAFBDHG",
	"HEFGBCDA", "CFAHGBED", "BAEHCGFD", "CEAHBGFD", "CFAEDBHG", "EFDCABHG", "FGEHCABD", "FEHGBADC",
	"BAGFHDCE", "CFAEDBHG", "EFGHABCD", "DHGAFECB", "CGAFHDBE", "DFEACBHG", "EDGBAHCF", "BADCGHEF",
	"GCBFHDAE", "FGDCHABE", "DFGAHBCE", "HFGEDBCA", "GDFBHCAE", "CGAHFEBD", "HGEFCDBA", "HEFGBCDA",
}
