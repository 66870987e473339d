package models

// PrintHeader holds the letterhead details printed on every bilty copy.
// Configured through the environment, not stored per record.
type PrintHeader struct {
	CompanyName string
	Address     string
	City        string
	State       string
	Pincode     string
	GSTIN       string
	Mobile      string
	Footnote    string
}

// BiltyPDFData is the template payload for one printed copy of a bilty.
type BiltyPDFData struct {
	Header      PrintHeader
	Bilty       *Bilty
	BiltyDate   string // formatted
	InvoiceDate string // formatted
	TotalWords  string
	CopyTitle   string
}
