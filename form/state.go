package form

import (
	"time"

	"transportbilty/models"
)

// Form field names, identical to the transport_bilty column names.
const (
	FieldGRNo              = "gr_no"
	FieldCityCode          = "city_code"
	FieldCity              = "city"
	FieldTransportName     = "transport_name"
	FieldTransportGST      = "transport_gst"
	FieldTransportMobile   = "transport_mobile"
	FieldBiltyDate         = "bilty_date"
	FieldConsignorName     = "consignor_name"
	FieldConsignorGST      = "consignor_gst"
	FieldConsignorMobile   = "consignor_mobile"
	FieldConsigneeName     = "consignee_name"
	FieldConsigneeGST      = "consignee_gst"
	FieldConsigneeMobile   = "consignee_mobile"
	FieldEwayBillAadharPan = "eway_bill_aadhar_pan"
	FieldInvoiceNo         = "invoice_no"
	FieldInvoiceDate       = "invoice_date"
	FieldInvoiceValue      = "invoice_value"
	FieldPvtMarks          = "pvt_marks"
	FieldContent           = "content"
	FieldNoOfPackages      = "no_of_packages"
	FieldWeight            = "weight"
	FieldRate              = "rate"
	FieldFreightAmount     = "freight_amount"
	FieldPaymentMode       = "payment_mode"
	FieldDeliveryType      = "delivery_type"
	FieldLabourCharge      = "labour_charge"
	FieldBiltyCharge       = "bilty_charge"
	FieldTollTax           = "toll_tax"
	FieldPF                = "pf"
	FieldOtherCharge       = "other_charge"
	FieldTotalAmount       = "total_amount"
	FieldRemarks           = "remarks"
)

const dateLayout = "2006-01-02"

// State is one immutable snapshot of the entry form. Fields hold the raw text
// the user typed; numbers are parsed only when derived values are computed or
// the record is converted for submission. Transitions return a fresh State,
// the receiver is never mutated.
type State struct {
	fields map[string]string
}

// NewState returns the blank form: both dates default to the given day, the
// charge fields to "0", payment mode to to-pay and delivery to godown.
func NewState(now time.Time) State {
	day := now.Format(dateLayout)
	return State{fields: map[string]string{
		FieldGRNo:              "",
		FieldCityCode:          "",
		FieldCity:              "",
		FieldTransportName:     "",
		FieldTransportGST:      "",
		FieldTransportMobile:   "",
		FieldBiltyDate:         day,
		FieldConsignorName:     "",
		FieldConsignorGST:      "",
		FieldConsignorMobile:   "",
		FieldConsigneeName:     "",
		FieldConsigneeGST:      "",
		FieldConsigneeMobile:   "",
		FieldEwayBillAadharPan: "",
		FieldInvoiceNo:         "",
		FieldInvoiceDate:       day,
		FieldInvoiceValue:      "",
		FieldPvtMarks:          "",
		FieldContent:           "",
		FieldNoOfPackages:      "",
		FieldWeight:            "",
		FieldRate:              "",
		FieldFreightAmount:     "",
		FieldPaymentMode:       models.PaymentToPay,
		FieldDeliveryType:      models.DeliveryGodown,
		FieldLabourCharge:      "0",
		FieldBiltyCharge:       "0",
		FieldTollTax:           "0",
		FieldPF:                "0",
		FieldOtherCharge:       "0",
		FieldTotalAmount:       "0",
		FieldRemarks:           "",
	}}
}

func (s State) clone() State {
	next := make(map[string]string, len(s.fields))
	for k, v := range s.fields {
		next[k] = v
	}
	return State{fields: next}
}

// Field returns the current text of a field.
func (s State) Field(name string) string {
	return s.fields[name]
}

func (s State) recalcFreight() {
	s.fields[FieldFreightAmount] = FreightAmount(
		s.fields[FieldWeight], s.fields[FieldRate], s.fields[FieldFreightAmount])
}

func (s State) recalcTotal() {
	s.fields[FieldTotalAmount] = TotalAmount(
		s.fields[FieldFreightAmount],
		s.fields[FieldLabourCharge],
		s.fields[FieldBiltyCharge],
		s.fields[FieldTollTax],
		s.fields[FieldPF],
		s.fields[FieldOtherCharge])
}

// Set applies a direct user edit. Freight is recomputed only when weight or
// rate changed; the total always follows.
func (s State) Set(field, value string) State {
	next := s.clone()
	next.fields[field] = value
	if field == FieldWeight || field == FieldRate {
		next.recalcFreight()
	}
	next.recalcTotal()
	return next
}

// ApplyPatch merges an autofill projection. An empty fetched value never
// clobbers whatever is already in the form.
func (s State) ApplyPatch(patch map[string]string) State {
	next := s.clone()
	factorChanged := false
	for field, value := range patch {
		if value == "" {
			continue
		}
		next.fields[field] = value
		if field == FieldWeight || field == FieldRate {
			factorChanged = true
		}
	}
	if factorChanged {
		next.recalcFreight()
	}
	next.recalcTotal()
	return next
}

// SeedCharges fills the four standing charges from a historical record, but
// only where the field still holds its "0" default. Edits made before the
// asynchronous seed resolves stay put.
func (s State) SeedCharges(labour, bilty, toll, pf string) State {
	next := s.clone()
	seed := func(field, value string) {
		if value != "" && next.fields[field] == "0" {
			next.fields[field] = value
		}
	}
	seed(FieldLabourCharge, labour)
	seed(FieldBiltyCharge, bilty)
	seed(FieldTollTax, toll)
	seed(FieldPF, pf)
	next.recalcTotal()
	return next
}

// ToBilty converts the snapshot into a record ready to persist. Numeric
// fields parse with the zero-on-failure rule. The freight field is taken
// as-is, so a manually adjusted figure survives submission, and the total is
// recomputed from that same value so the stored record always adds up.
func (s State) ToBilty() *models.Bilty {
	biltyDate, err := time.Parse(dateLayout, s.fields[FieldBiltyDate])
	if err != nil {
		biltyDate = time.Now().UTC()
	}
	invoiceDate, err := time.Parse(dateLayout, s.fields[FieldInvoiceDate])
	if err != nil {
		invoiceDate = time.Now().UTC()
	}

	freight := ParseAmount(s.fields[FieldFreightAmount])
	total := ParseAmount(TotalAmount(
		s.fields[FieldFreightAmount],
		s.fields[FieldLabourCharge],
		s.fields[FieldBiltyCharge],
		s.fields[FieldTollTax],
		s.fields[FieldPF],
		s.fields[FieldOtherCharge]))

	return &models.Bilty{
		GRNo:              s.fields[FieldGRNo],
		CityCode:          s.fields[FieldCityCode],
		City:              s.fields[FieldCity],
		TransportName:     s.fields[FieldTransportName],
		TransportGST:      s.fields[FieldTransportGST],
		TransportMobile:   s.fields[FieldTransportMobile],
		BiltyDate:         biltyDate,
		ConsignorName:     s.fields[FieldConsignorName],
		ConsignorGST:      s.fields[FieldConsignorGST],
		ConsignorMobile:   s.fields[FieldConsignorMobile],
		ConsigneeName:     s.fields[FieldConsigneeName],
		ConsigneeGST:      s.fields[FieldConsigneeGST],
		ConsigneeMobile:   s.fields[FieldConsigneeMobile],
		EwayBillAadharPan: s.fields[FieldEwayBillAadharPan],
		InvoiceNo:         s.fields[FieldInvoiceNo],
		InvoiceDate:       invoiceDate,
		InvoiceValue:      ParseAmount(s.fields[FieldInvoiceValue]),
		PvtMarks:          s.fields[FieldPvtMarks],
		Content:           s.fields[FieldContent],
		NoOfPackages:      int(ParseAmount(s.fields[FieldNoOfPackages])),
		Weight:            ParseAmount(s.fields[FieldWeight]),
		Rate:              ParseAmount(s.fields[FieldRate]),
		FreightAmount:     freight,
		PaymentMode:       s.fields[FieldPaymentMode],
		DeliveryType:      s.fields[FieldDeliveryType],
		LabourCharge:      ParseAmount(s.fields[FieldLabourCharge]),
		BiltyCharge:       ParseAmount(s.fields[FieldBiltyCharge]),
		TollTax:           ParseAmount(s.fields[FieldTollTax]),
		PF:                ParseAmount(s.fields[FieldPF]),
		OtherCharge:       ParseAmount(s.fields[FieldOtherCharge]),
		TotalAmount:       total,
		Remarks:           s.fields[FieldRemarks],
	}
}
